package main

import (
	api "fuelprice/internal/api/http"

	"github.com/gofiber/fiber/v2"
)

func (a *App) initFiber() {
	a.Fiber = fiber.New(fiber.Config{
		AppName:               a.Config.AppName,
		DisableStartupMessage: true,
		ErrorHandler:          api.NewErrorHandler(a.Logger),
	})
}
