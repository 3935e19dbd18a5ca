package http

import (
	"context"
	"fuelprice/models"
)

//go:generate mockery --case=snake --name=PriceUseCase

type PriceUseCase interface {
	AllStates(ctx context.Context) ([]models.PriceRecord, error)
	ByCity(ctx context.Context, city string) ([]models.PriceRecord, error)
	ByState(ctx context.Context, state string) ([]models.PriceRecord, error)
}
