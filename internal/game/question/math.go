package question

import (
	"fmt"

	"github.com/dmolchanov/magequest/internal/game/random"
)

type mathOp string

const (
	opAdd  mathOp = "add"
	opSub  mathOp = "sub"
	opMul  mathOp = "mul"
	opDiv  mathOp = "div"
	opEq   mathOp = "eq"
	opFrac mathOp = "frac"
	opNeg  mathOp = "neg"
	opSq   mathOp = "sq"
	opPct  mathOp = "pct"
	opWord mathOp = "word"
)

// mathOps returns the operation pool unlocked at the given math level.
func mathOps(level int) []mathOp {
	ops := []mathOp{opAdd}
	if level >= 2 {
		ops = append(ops, opSub)
	}
	if level >= 3 {
		ops = append(ops, opMul)
	}
	if level >= 4 {
		ops = append(ops, opDiv, opEq)
	}
	if level >= 5 {
		ops = append(ops, opFrac, opNeg)
	}
	if level >= 6 {
		ops = append(ops, opSq)
	}
	if level >= 7 {
		ops = append(ops, opPct, opWord)
	}
	return ops
}

var wordProblems = []Question{
	{Text: "В классе 30 учеников. Ушло 7. Сколько осталось?", CorrectAnswer: "23"},
	{Text: "У Маши 5 яблок, у Пети в 3 раза больше. Сколько у Пети?", CorrectAnswer: "15"},
	{Text: "Маг победил 4 гоблина и 6 слизней. Сколько всего?", CorrectAnswer: "10"},
	{Text: "В кошельке 50 монет. Потратили 18. Сколько осталось?", CorrectAnswer: "32"},
	{Text: "Поезд едет 80 км/ч. За 2 часа проедет сколько км?", CorrectAnswer: "160"},
	{Text: "Прямоугольник 6×4. Найди периметр.", CorrectAnswer: "20"},
	{Text: "Прямоугольник 5×3. Найди площадь.", CorrectAnswer: "15"},
	{Text: "Три угла треугольника: 60°, 70°, ?°", CorrectAnswer: "50"},
	{Text: "Купили 3 тетради по 12 руб. Сколько заплатили?", CorrectAnswer: "36"},
	{Text: "В день читаю 15 стр. За неделю сколько страниц?", CorrectAnswer: "105"},
	{Text: "Скорость 60 км/ч, время 3 ч. Расстояние?", CorrectAnswer: "180"},
	{Text: "Периметр квадрата 28. Сторона?", CorrectAnswer: "7"},
	{Text: "Куплено 4 кг по 35 руб/кг. Итого?", CorrectAnswer: "140"},
	{Text: "15% от 200 = ?", CorrectAnswer: "30"},
	{Text: "2³ = ?", CorrectAnswer: "8"},
}

func generateMath(src random.Source, level int) Question {
	op := random.Pick(src, mathOps(level))
	m := min(level*10, 100)

	switch op {
	case opAdd:
		a, b := random.Between(src, 1, m), random.Between(src, 1, m)
		return Question{
			Text:          fmt.Sprintf("%d + %d = ?", a, b),
			CorrectAnswer: fmt.Sprintf("%d", a+b),
			Hint:          "Сложение",
		}
	case opSub:
		b := random.Between(src, 1, m-1)
		a := random.Between(src, b, m)
		return Question{
			Text:          fmt.Sprintf("%d − %d = ?", a, b),
			CorrectAnswer: fmt.Sprintf("%d", a-b),
			Hint:          "Вычитание",
		}
	case opMul:
		limit := min(level+5, 12)
		a, b := random.Between(src, 1, limit), random.Between(src, 1, limit)
		return Question{
			Text:          fmt.Sprintf("%d × %d = ?", a, b),
			CorrectAnswer: fmt.Sprintf("%d", a*b),
			Hint:          "Умножение",
		}
	case opDiv:
		b := random.Between(src, 2, 10)
		res := random.Between(src, 1, 10)
		return Question{
			Text:          fmt.Sprintf("%d ÷ %d = ?", b*res, b),
			CorrectAnswer: fmt.Sprintf("%d", res),
			Hint:          "Деление",
		}
	case opEq:
		b := random.Between(src, 1, 20)
		c := random.Between(src, b+1, 40)
		return Question{
			Text:          fmt.Sprintf("x + %d = %d\nНайди x", b, c),
			CorrectAnswer: fmt.Sprintf("%d", c-b),
			Hint:          "Уравнение",
		}
	case opFrac:
		den := random.Pick(src, []int{2, 4, 5, 10})
		num := random.Between(src, 1, den-1)
		base := den * random.Between(src, 1, 10)
		return Question{
			Text:          fmt.Sprintf("%d/%d от %d = ?", num, den, base),
			CorrectAnswer: fmt.Sprintf("%d", base*num/den),
			Hint:          "Дроби",
		}
	case opNeg:
		a := random.Between(src, 1, 20)
		b := random.Between(src, a+1, 30)
		return Question{
			Text:          fmt.Sprintf("%d − %d = ?", a, b),
			CorrectAnswer: fmt.Sprintf("%d", a-b),
			Hint:          "Отрицательные числа",
		}
	case opSq:
		n := random.Between(src, 2, min(level, 12))
		return Question{
			Text:          fmt.Sprintf("%d² = ?", n),
			CorrectAnswer: fmt.Sprintf("%d", n*n),
			Hint:          "Квадрат числа",
		}
	case opPct:
		pct := random.Pick(src, []int{10, 20, 25, 50})
		// Base is chosen so the percentage is a whole number.
		base := random.Between(src, 1, 10) * 10
		if pct == 25 {
			base = random.Between(src, 1, 5) * 20
		}
		return Question{
			Text:          fmt.Sprintf("%d%% от %d = ?", pct, base),
			CorrectAnswer: fmt.Sprintf("%d", base*pct/100),
			Hint:          "Проценты",
		}
	default: // opWord
		q := random.Pick(src, wordProblems)
		q.Hint = "Задача"
		return q
	}
}
