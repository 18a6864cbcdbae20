package logging

import (
	"os"

	"sep-workflow/internal/config"

	"github.com/sirupsen/logrus"
)

const serviceName = "sep-workflow"

// Setup configures the standard logrus logger: stdout, JSON outside development,
// default fields on every entry.
func Setup(cfg *config.Config) {
	logger := logrus.StandardLogger()
	logger.Out = os.Stdout
	if cfg.Development() {
		logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	} else {
		logger.Formatter = &logrus.JSONFormatter{}
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.AddHook(&DefaultFieldsHook{Env: cfg.Env})
}

type DefaultFieldsHook struct {
	Env string
}

func (hook *DefaultFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *DefaultFieldsHook) Fire(e *logrus.Entry) error {
	e.Data["service"] = serviceName
	e.Data["env"] = hook.Env
	return nil
}
