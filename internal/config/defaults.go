package config

import "time"

// Default values for configuration
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	DefaultTimezone = "Local"

	DefaultTasksSheet     = "Tasks"
	DefaultLogSheet       = "Выполнение"
	DefaultRequestTimeout = 10 * time.Second
)

// DefaultMessages are the Russian texts the bot ships with.
var DefaultMessages = MessagesConfig{
	TaskFormat:       "Задача: %s",
	NoTasks:          "🎉 Отличные новости! Сегодня задач нет.",
	ListErrorFormat:  "⚠️ Ошибка: %v",
	DoneButton:       "✔ Выполнено",
	CancelButton:     "✘ Отмена",
	StatusFormat:     "%s\nСтатус: %s",
	SaveFailedFormat: "%s\n⚠️ Ошибка сохранения!",
	ActionError:      "⚠️ Произошла ошибка. Попробуйте снова.",
	Help: "📋 Ежедневный чек-лист @botname\n\n" +
		"/start - показать задачи на сегодня\n" +
		"/today - то же самое\n" +
		"/help - эта справка\n\n" +
		"Под каждой задачей нажмите «Выполнено» или «Отмена», результат попадёт в таблицу.",
}
