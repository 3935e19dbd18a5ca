package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RegisterMiddleware installs the /metrics endpoint and request logging.
// Metrics wrap the logger so they record the status set by the error handler.
// The prometheus collectors go to the default registry, so call it once
// per process.
func RegisterMiddleware(f *fiber.App, appName string, l *logrus.Logger) {
	m := NewMiddleware(appName, f, l)
	m.useMetrics()
	m.useLogger()
}

func RegisterHTTPEndpoints(f *fiber.App, p PriceUseCase, l *logrus.Logger) {
	h := NewHandler(p, l)
	router := f.Group("api")
	router.Get("/healthcheck", h.HealthCheck)

	diesel := router.Group("dieselprice")
	diesel.Get("/all", h.AllStates)
	diesel.Get("/bycity/recent", h.ByCity)
	diesel.Get("/bystate/recent", h.ByState)
}
