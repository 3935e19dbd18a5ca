package http

import (
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Middleware struct {
	appName string
	fiber   *fiber.App
	logger  *logrus.Logger
}

func NewMiddleware(appName string, fiber *fiber.App, logger *logrus.Logger) *Middleware {
	return &Middleware{
		appName: appName,
		fiber:   fiber,
		logger:  logger,
	}
}

func (m *Middleware) useMetrics() {
	prometheus := fiberprometheus.New(m.appName)
	prometheus.RegisterAt(m.fiber, "/metrics")
	m.fiber.Use(prometheus.Middleware)
}

// useLogger runs the error handler itself so the logged status is final.
func (m *Middleware) useLogger() {
	m.fiber.Use(func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if err := c.App().ErrorHandler(c, err); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		m.logger.
			WithField("method", c.Method()).
			WithField("path", c.Path()).
			WithField("status", c.Response().StatusCode()).
			WithField("latency", time.Since(start).String()).
			Info("request")

		return nil
	})
}
