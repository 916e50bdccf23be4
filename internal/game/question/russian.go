package question

import "github.com/dmolchanov/magequest/internal/game/random"

type russianEntry struct {
	question Question
	minLevel int
}

func rw(level int, text, answer, hint string) russianEntry {
	return russianEntry{
		question: Question{Text: text, CorrectAnswer: answer, Hint: hint},
		minLevel: level,
	}
}

// russianPool is the curated spelling and grammar pool. Each entry names
// the lowest russian level it appears at; higher levels keep the easier
// entries in rotation.
var russianPool = []russianEntry{
	// Level 1: word spelling basics.
	rw(1, "Молоко или малоко?", "молоко", ""),
	rw(1, "Собака или сабака?", "собака", ""),
	rw(1, "Корова или карова?", "корова", ""),
	rw(1, "Яблоко или яблако?", "яблоко", ""),
	rw(1, "Солнце или сонце?", "солнце", ""),
	rw(1, "Ворона или варона?", "ворона", ""),
	rw(1, "Петух или питух?", "петух", ""),
	rw(1, "Ребята или рибята?", "ребята", ""),
	rw(1, "Медведь или медветь?", "медведь", ""),
	rw(1, "Морковь или морков?", "морковь", ""),
	rw(1, "Огурец или агурец?", "огурец", ""),
	rw(1, "Девочка или девачка?", "девочка", ""),
	rw(1, "Мальчик или малчик?", "мальчик", ""),
	rw(1, "Учитель или учетель?", "учитель", ""),
	rw(1, "Тетрадь или тетрать?", "тетрадь", ""),
	rw(1, "Карандаш или карандош?", "карандаш", ""),

	// Level 2: ЖИ-ШИ, ЧА-ЩА, ЧУ-ЩУ, doubled consonants.
	rw(2, "Живот или жывот?", "живот", "ЖИ-ШИ пиши с И"),
	rw(2, "Шина или шына?", "шина", "ЖИ-ШИ пиши с И"),
	rw(2, "Жираф или жыраф?", "жираф", "ЖИ-ШИ пиши с И"),
	rw(2, "Чашка или чяшка?", "чашка", "ЧА-ЩА пиши с А"),
	rw(2, "Щавель или щявель?", "щавель", "ЧА-ЩА пиши с А"),
	rw(2, "Чудо или чюдо?", "чудо", "ЧУ-ЩУ пиши с У"),
	rw(2, "Щука или щюка?", "щука", "ЧУ-ЩУ пиши с У"),
	rw(2, "Класс или клас?", "класс", "Удвоенная согласная"),
	rw(2, "Суббота или субота?", "суббота", "Удвоенная согласная"),
	rw(2, "Аллея или алея?", "аллея", "Удвоенная согласная"),
	rw(2, "Коллекция или колекция?", "коллекция", ""),
	rw(2, "Программа или програма?", "программа", ""),
	rw(2, "Дружить или дружыть?", "дружить", "После Ж — И"),
	rw(2, "Хорошо или харашо?", "хорошо", ""),
	rw(2, "Ребёнок или рябёнок?", "ребёнок", ""),
	rw(2, "Железо или жылезо?", "железо", ""),

	// Level 3: soft/hard signs and prefixes.
	rw(3, "Мышь или мыш?", "мышь", "Ь у сущ. жен. рода после шипящей"),
	rw(3, "Ночь или ноч?", "ночь", "Ь у сущ. жен. рода"),
	rw(3, "Врач или врачь?", "врач", "Без Ь у сущ. муж. рода"),
	rw(3, "Вещь или вещ?", "вещь", "Ь у сущ. жен. рода"),
	rw(3, "Подъезд или подезд?", "подъезд", "Ъ после приставки перед Е"),
	rw(3, "Объявление или обявление?", "объявление", "Ъ после приставки"),
	rw(3, "Съезд или сезд?", "съезд", "Ъ после С перед Е"),
	rw(3, "Пьеса или песа?", "пьеса", "Разделительный Ь"),
	rw(3, "Сделать или зделать?", "сделать", "Приставка С-"),
	rw(3, "Сбежать или збежать?", "сбежать", "Приставка С-"),
	rw(3, "Расписание или разписание?", "расписание", "РАС- перед глухими"),
	rw(3, "Разрисовать или расрисовать?", "разрисовать", "РАЗ- перед звонкими"),
	rw(3, "Безграмотный или бесграмотный?", "безграмотный", "БЕЗ- перед звонкими"),
	rw(3, "Бесполезный или безполезный?", "бесполезный", "БЕС- перед глухими"),

	// Level 4: commonly misspelled words.
	rw(4, "Беспокойство или безпокойство?", "беспокойство", ""),
	rw(4, "Расстояние или растояние?", "расстояние", ""),
	rw(4, "Впечатление или впичатление?", "впечатление", ""),
	rw(4, "Путешествие или путишествие?", "путешествие", ""),
	rw(4, "Участвовать или учавствовать?", "участвовать", ""),
	rw(4, "Чувствовать или чюствовать?", "чувствовать", ""),
	rw(4, "Здравствуйте или здраствуйте?", "здравствуйте", ""),
	rw(4, "Пожалуйста или пожалуста?", "пожалуйста", ""),
	rw(4, "Президент или прездент?", "президент", ""),
	rw(4, "Экскурсия или экскурция?", "экскурсия", ""),
	rw(4, "Профессия или професия?", "профессия", ""),
	rw(4, "Территория или терирория?", "территория", ""),
	rw(4, "Замечательный или замечятельный?", "замечательный", ""),
	rw(4, "Разговор или раговор?", "разговор", ""),

	// Level 5: synonyms and antonyms.
	rw(5, "Синоним слова «радость»:", "счастье", "Близкое по смыслу"),
	rw(5, "Антоним слова «грустный»:", "весёлый", ""),
	rw(5, "Синоним слова «большой»:", "огромный", ""),
	rw(5, "Антоним слова «быстро»:", "медленно", ""),
	rw(5, "Синоним слова «храбрый»:", "смелый", ""),
	rw(5, "Антоним слова «начало»:", "конец", ""),
	rw(5, "Синоним слова «смотреть»:", "глядеть", ""),
	rw(5, "Антоним слова «добрый»:", "злой", ""),
	rw(5, "Синоним слова «говорить»:", "произносить", ""),
	rw(5, "Антоним слова «трудный»:", "лёгкий", ""),

	// Level 6: parts of speech and word structure.
	rw(6, "Часть речи слова «красивый»:", "прилагательное", ""),
	rw(6, "Часть речи слова «бежать»:", "глагол", ""),
	rw(6, "Часть речи слова «он»:", "местоимение", ""),
	rw(6, "Часть речи слова «быстро»:", "наречие", ""),
	rw(6, "Часть речи слова «и»:", "союз", ""),
	rw(6, "Часть речи слова «ах»:", "междометие", ""),
	rw(6, "Сколько слогов в «яблоко»?", "3", ""),
	rw(6, "Корень слова «переход»:", "ход", "пере-ход"),
	rw(6, "Приставка в «подснежник»:", "под", "под-снежник"),
	rw(6, "Суффикс в слове «учитель»:", "тель", "учи-тель"),
}

func generateRussian(src random.Source, level int) Question {
	eligible := make([]russianEntry, 0, len(russianPool))
	for _, e := range russianPool {
		if e.minLevel <= level {
			eligible = append(eligible, e)
		}
	}
	return random.Pick(src, eligible).question
}
