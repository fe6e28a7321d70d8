package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns a JSON logger writing to stdout. Unknown levels fall back to info.
func SetupLogging(level string) *logrus.Logger {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		parsedLevel = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Level: parsedLevel,
	}

	return &logger
}
