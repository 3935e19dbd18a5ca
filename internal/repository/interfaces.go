package repository

import (
	"context"
	"fuelprice/models"
)

//go:generate mockery --case=snake --name=PriceRepo

// Collection names one append-only set of price records.
type Collection string

const (
	AllStates Collection = "DieselAllStates"
	ByCities  Collection = "DieselByCities"
	ByState   Collection = "DieselByState"
)

var Collections = []Collection{AllStates, ByCities, ByState}

func (c Collection) ToString() string {
	return string(c)
}

// Table is the SQL table backing the collection.
func (c Collection) Table() (string, error) {
	switch c {
	case AllStates:
		return "diesel_all_states", nil
	case ByCities:
		return "diesel_by_cities", nil
	case ByState:
		return "diesel_by_state", nil
	default:
		return "", ErrUnknownCollection
	}
}

type PriceRepo interface {
	Store(ctx context.Context, collection Collection, records []models.PriceRecord) error
}
