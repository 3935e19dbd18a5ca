package structs

import (
	"fuelprice/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PriceDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	BatchID      string             `bson:"batch_id"`
	State        string             `bson:"state"`
	Price        string             `bson:"price"`
	Change       string             `bson:"change"`
	ChangeStatus string             `bson:"change_status"`
	Date         string             `bson:"date"`
}

func NewPriceDocument(r models.PriceRecord) PriceDocument {
	return PriceDocument{
		BatchID:      r.BatchID,
		State:        r.Label,
		Price:        r.Price,
		Change:       r.Change,
		ChangeStatus: r.Trend.ToString(),
		Date:         r.CapturedOn,
	}
}
