package usecase

// Log prefixes
const (
	LogPrefixHandle = "internal.chat.usecase.Handle"
)

// Generation parameters for the conversational provider
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 512

	// HistoryTail is how many stored messages travel with each request
	HistoryTail = 10
)

// System prompts for the conversational provider
const (
	SystemPromptPlain = "Ты полезный AI-ассистент. Отвечай на русском языке кратко и по существу."

	SystemPromptSearch = "Ты AI-ассистент с доступом к актуальной информации из интернета. " +
		"Тебе предоставлены свежие данные из надёжных источников. " +
		"ВАЖНО: Используй ТОЛЬКО предоставленную актуальную информацию для ответа. " +
		"Не говори, что у тебя нет доступа к интернету - у тебя есть актуальные данные!"
)

// Augmented prompt layout for search-backed turns
const (
	searchPromptFormat = "Пользователь спрашивает: %s\n\n" +
		"=== АКТУАЛЬНЫЕ ДАННЫЕ ИЗ ИНТЕРНЕТА ===\n%s\n\n" +
		"=== ИНСТРУКЦИЯ ===\n" +
		"Ответь на вопрос пользователя, используя ТОЛЬКО предоставленную выше актуальную информацию. " +
		"Не упоминай ограничения доступа к интернету - у тебя есть свежие данные!"
)

// User-visible messages
const (
	MessageImageCreated = "Изображение создано по запросу: %q"
)
