package main

import (
	"github.com/ic2hrmk/promtail"
	"github.com/sirupsen/logrus"
)

type lokiClient interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// lokiHook forwards every logrus entry to loki at the matching level.
type lokiHook struct {
	client lokiClient
}

func (h *lokiHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *lokiHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}

	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		h.client.Errorf("%s", line)
	case logrus.WarnLevel:
		h.client.Warnf("%s", line)
	case logrus.InfoLevel:
		h.client.Infof("%s", line)
	default:
		h.client.Debugf("%s", line)
	}

	return nil
}

func (a *App) initLoki() error {
	if a.Config.LokiAddress == "" {
		return nil
	}

	identifiers := map[string]string{
		"instanceId": a.Config.AppName,
	}

	promTail, err := promtail.NewJSONv1Client(a.Config.LokiAddress, identifiers)
	if err != nil {
		return err
	}

	a.PromTail = promTail
	a.Logger.AddHook(&lokiHook{client: promTail})

	return nil
}
