package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

type serviceHook struct {
	service string
}

func (h serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h serviceHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = h.service
	return nil
}

// InitLogger configures the standard logrus logger for a service: JSON output,
// level from LOG_LEVEL and a service field on every entry.
func InitLogger(service string) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.AddHook(serviceHook{service: service})
}
