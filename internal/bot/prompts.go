package bot

// Fixed user-facing strings. The bot speaks Russian; these are sent verbatim
// and never pass through the model.
const (
	// SystemPrompt seeds every conversation and pins the model to the
	// EV trip-planning domain.
	SystemPrompt = "Ты — специализированный помощник по электромобилям и поездкам.\n" +
		"Отвечай ТОЛЬКО на вопросы, связанные с электромобилями, батареями, запасом хода, маршрутами и зарядными станциями.\n" +
		"Если данных недостаточно, задавай уточняющие вопросы."

	greetingText = "Привет! 🚗⚡\n" +
		"Я помогаю планировать поездки на электромобилях.\n\n" +
		"Напиши, например:\n" +
		"«Tesla Model 3, еду из Минска в Москву»"

	refusalText = "Я отвечаю только на вопросы по электромобилям.\n" +
		"Например: модель авто, маршрут, зарядка."

	apologyText = "Произошла ошибка при расчёте. Попробуй ещё раз позже."

	factsHeader = "\n\nКлючевые данные пользователя:\n"
)
