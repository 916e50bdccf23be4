package question

import (
	"fmt"

	"github.com/dmolchanov/magequest/internal/game/random"
)

type geoOp string

const (
	opPerimeter  geoOp = "perimeter"
	opArea       geoOp = "area"
	opAngle      geoOp = "angle"
	opProportion geoOp = "proportion"
	opPower      geoOp = "power"
	opCoord      geoOp = "coord"
	opVolume     geoOp = "volume"
)

func geoOps(level int) []geoOp {
	ops := []geoOp{opPerimeter, opArea, opAngle}
	if level >= 4 {
		ops = append(ops, opProportion)
	}
	if level >= 5 {
		ops = append(ops, opPower, opCoord)
	}
	if level >= 7 {
		ops = append(ops, opVolume)
	}
	return ops
}

func generateGeometry(src random.Source, level int) Question {
	switch random.Pick(src, geoOps(level)) {
	case opPerimeter:
		switch src.Intn(3) {
		case 0:
			a, b := random.Between(src, 2, 12), random.Between(src, 2, 12)
			return Question{
				Text:          fmt.Sprintf("Периметр прямоуг. %d×%d = ?", a, b),
				CorrectAnswer: fmt.Sprintf("%d", 2*(a+b)),
				Hint:          "P = 2(a+b)",
			}
		case 1:
			a := random.Between(src, 2, 10)
			return Question{
				Text:          fmt.Sprintf("Периметр квадрата со стороной %d = ?", a),
				CorrectAnswer: fmt.Sprintf("%d", 4*a),
				Hint:          "P = 4a",
			}
		default:
			a, b, c := random.Between(src, 2, 8), random.Between(src, 2, 8), random.Between(src, 2, 8)
			return Question{
				Text:          fmt.Sprintf("Периметр треуг. со сторонами %d, %d, %d = ?", a, b, c),
				CorrectAnswer: fmt.Sprintf("%d", a+b+c),
				Hint:          "P = a+b+c",
			}
		}
	case opArea:
		switch src.Intn(3) {
		case 0:
			a, b := random.Between(src, 2, 10), random.Between(src, 2, 10)
			return Question{
				Text:          fmt.Sprintf("Площадь прямоуг. %d×%d = ?", a, b),
				CorrectAnswer: fmt.Sprintf("%d", a*b),
				Hint:          "S = a×b",
			}
		case 1:
			a := random.Between(src, 2, 10)
			return Question{
				Text:          fmt.Sprintf("Площадь квадрата со стороной %d = ?", a),
				CorrectAnswer: fmt.Sprintf("%d", a*a),
				Hint:          "S = a²",
			}
		default:
			// Even base keeps b*h/2 a whole number.
			b := 2 * random.Between(src, 1, 5)
			h := random.Between(src, 2, 10)
			return Question{
				Text:          fmt.Sprintf("Площадь треуг. с основ. %d и высотой %d = ?", b, h),
				CorrectAnswer: fmt.Sprintf("%d", b*h/2),
				Hint:          "S = b×h/2",
			}
		}
	case opAngle:
		a := random.Between(src, 20, 80)
		b := random.Between(src, 20, 170-a)
		return Question{
			Text:          fmt.Sprintf("Два угла треугольника: %d° и %d°. Третий?", a, b),
			CorrectAnswer: fmt.Sprintf("%d", 180-a-b),
			Hint:          "Сумма углов = 180°",
		}
	case opProportion:
		// a = c*k keeps x = a*d/c whole.
		c := random.Between(src, 2, 8)
		d := random.Between(src, 2, 8)
		k := random.Between(src, 2, 5)
		return Question{
			Text:          fmt.Sprintf("%d/x = %d/%d\nНайди x", c*k, c, d),
			CorrectAnswer: fmt.Sprintf("%d", k*d),
			Hint:          "Пропорция: a/b = c/d",
		}
	case opPower:
		n := random.Between(src, 2, 5)
		if src.Intn(2) == 0 {
			return Question{
				Text:          fmt.Sprintf("%d² = ?", n),
				CorrectAnswer: fmt.Sprintf("%d", n*n),
				Hint:          "Степень числа",
			}
		}
		return Question{
			Text:          fmt.Sprintf("%d³ = ?", n),
			CorrectAnswer: fmt.Sprintf("%d", n*n*n),
			Hint:          "Степень числа",
		}
	case opCoord:
		x1 := random.Between(src, -5, 5)
		y1 := random.Between(src, -5, 5)
		dx := random.Between(src, 1, 5)
		return Question{
			Text:          fmt.Sprintf("Точка A(%d, %d). Сдвинь на %d по X. Новый X?", x1, y1, dx),
			CorrectAnswer: fmt.Sprintf("%d", x1+dx),
			Hint:          "Координатная ось",
		}
	default: // opVolume
		a, b, c := random.Between(src, 2, 8), random.Between(src, 2, 8), random.Between(src, 2, 8)
		return Question{
			Text:          fmt.Sprintf("Объём параллелепипеда %d×%d×%d = ?", a, b, c),
			CorrectAnswer: fmt.Sprintf("%d", a*b*c),
			Hint:          "V = a×b×c",
		}
	}
}
