package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с уровнем info, чтобы пакеты и тесты
// могли логировать без явной инициализации.
var Log = logrus.New()

// Init инициализирует глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput настраивает логгер так же, как Init, но пишет в out.
func InitWithOutput(out io.Writer) {
	Log = logrus.New()

	// 1. Уровень логирования из переменной окружения, по умолчанию "info".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер: "json" для сбора логов, "text" для разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}

// Component возвращает логгер с полем "component", как принято в системах.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
