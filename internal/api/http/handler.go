package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	priceUseCase PriceUseCase
	logger       *logrus.Logger
}

func NewHandler(p PriceUseCase, l *logrus.Logger) *Handler {
	return &Handler{
		priceUseCase: p,
		logger:       l,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

func (h *Handler) AllStates(c *fiber.Ctx) error {
	out, err := h.priceUseCase.AllStates(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(out)
}

func (h *Handler) ByCity(c *fiber.Ctx) error {
	out, err := h.priceUseCase.ByCity(c.UserContext(), c.Query("city"))
	if err != nil {
		return err
	}

	return c.JSON(out)
}

func (h *Handler) ByState(c *fiber.Ctx) error {
	out, err := h.priceUseCase.ByState(c.UserContext(), c.Query("state"))
	if err != nil {
		return err
	}

	return c.JSON(out)
}
