package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const levelEnv = "LOG_LEVEL"

// New инициализирует логгер. В режиме GIN_MODE=release пишет JSON с уровнем info, в остальных
// окружениях - текст с уровнем debug. LOG_LEVEL переопределяет уровень в любом режиме.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})
	l.SetLevel(logrus.InfoLevel)

	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if raw := os.Getenv(levelEnv); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			l.WithField("value", raw).Warn("unknown log level, keeping default")
		} else {
			l.SetLevel(level)
		}
	}

	return l
}
