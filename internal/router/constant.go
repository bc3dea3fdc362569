package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// DefaultImagePrompt is used when stripping commands leaves nothing of the
// utterance
const DefaultImagePrompt = "красивый пейзаж"

// imageTriggers mark an utterance as an image-generation request. Matching
// is substring based over the lowercased utterance, same as the search
// tables below.
var imageTriggers = []string{
	"нарисуй", "создай изображение", "сгенерируй картинку", "создай картинку",
	"нарисовать", "изобрази", "покажи как выглядит", "визуализируй",
	"/generate", "/img", "/image", "/draw", "/создай", "/нарисуй",
	"картинка", "рисунок", "изображение", "фото", "арт", "иллюстрация",
}

// imageCommands are stripped from the utterance to recover the bare image
// prompt. Longer commands first so "создай изображение" goes before
// "/создай".
var imageCommands = []string{
	"покажи как выглядит", "сгенерируй картинку", "создай изображение",
	"создай картинку", "визуализируй", "нарисовать", "/нарисуй", "нарисуй",
	"изобрази", "/generate", "/создай", "/image", "/draw", "/img",
}

// categoryTable holds the search trigger keywords grouped by category.
// Order matters: the first category with a match wins.
type categoryKeywords struct {
	category Category
	keywords []string
}

var categoryTable = []categoryKeywords{
	{CategoryTemporal, []string{
		"актуальная информация", "сегодня", "вчера", "недавно",
		"текущий", "сейчас", "в настоящее время", "на данный момент",
		"2024", "2025", "2026", "этот год", "в этом году", "в прошлом году",
	}},
	{CategoryFinancial, []string{
		"курс", "цена", "стоимость", "котировки", "биржа", "акции",
		"криптовалюта", "биткоин", "доллар", "евро", "рубль",
		"инфляция", "экономика", "ввп", "бюджет",
	}},
	{CategoryWeather, []string{
		"погода", "прогноз", "температура", "климат", "дождь", "снег",
		"ветер", "давление", "влажность",
	}},
	{CategoryNews, []string{
		"последние новости", "свежие новости", "новости", "что происходит",
		"что нового", "обновления", "изменения", "события", "произошло",
		"случилось", "новость", "сообщают", "объявили", "заявили",
	}},
	{CategoryTech, []string{
		"последняя версия", "обновление", "выпуск", "релиз",
		"исследование", "открытие", "изобретение", "патент",
	}},
	{CategorySports, []string{
		"результаты", "счет", "матч", "игра", "чемпионат",
		"фильм", "сериал", "книга", "музыка", "премьера",
	}},
	{CategoryLocation, []string{
		"работает", "открыт", "закрыт", "расписание", "адрес",
		"телефон", "сайт", "контакты", "время работы",
	}},
	{CategoryGeneric, []string{
		"что такое", "кто такой", "определение", "история", "биография",
		"расскажи о", "информация о", "данные о", "статистика",
		"рейтинг", "топ", "список", "обзор",
	}},
}
