package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func (a *App) initLogger() {
	a.Logger = logrus.New()
	a.Logger.SetLevel(logrus.InfoLevel)
}

// initLogRus applies the configured level and optional rotated file output.
func (a *App) initLogRus() {
	switch a.Config.LogLevel {
	case "DEBUG":
		a.Logger.SetLevel(logrus.DebugLevel)
	case "ERROR":
		a.Logger.SetLevel(logrus.ErrorLevel)
	default:
		a.Logger.SetLevel(logrus.InfoLevel)
	}

	if a.Config.LogFile != "" {
		a.Logger.SetFormatter(&logrus.JSONFormatter{})
		a.Logger.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   a.Config.LogFile,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}))
	}
}
