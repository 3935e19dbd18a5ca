package http

import (
	"errors"
	"fuelprice/internal/controllers"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type errorBody struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode,omitempty"`
}

// NewErrorHandler maps upstream fetch failures to 502 and everything else
// to its fiber status or 500.
func NewErrorHandler(l *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fetchErr *controllers.FetchError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &fetchErr):
			return c.Status(fiber.StatusBadGateway).JSON(errorBody{
				Error:      err.Error(),
				StatusCode: fetchErr.StatusCode,
			})
		case errors.As(err, &fiberErr):
			return c.Status(fiberErr.Code).JSON(errorBody{Error: fiberErr.Message})
		default:
			l.WithField("path", c.Path()).WithError(err).Error("request failed")

			return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: err.Error()})
		}
	}
}
