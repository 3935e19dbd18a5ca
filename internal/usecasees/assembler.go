package usecasees

import (
	"context"
	"fuelprice/internal/repository"
	"fuelprice/models"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CaptureDateLayout is dd/MM/yy.
const CaptureDateLayout = "02/01/06"

// Assembler stamps one capture date and batch id on a batch and stores it.
type Assembler struct {
	priceRepo repository.PriceRepo

	now   func() time.Time
	newID func() string
}

func NewAssembler(
	priceRepo repository.PriceRepo,
	now func() time.Time,
) *Assembler {
	return &Assembler{
		priceRepo: priceRepo,
		now:       now,
		newID:     uuid.NewString,
	}
}

func (a *Assembler) Assemble(ctx context.Context, collection repository.Collection, records []models.PriceRecord) ([]models.PriceRecord, error) {
	out := make([]models.PriceRecord, 0, len(records))
	if len(records) == 0 {
		return out, nil
	}

	capturedOn := a.now().Format(CaptureDateLayout)
	batchID := a.newID()

	for _, r := range records {
		out = append(out, r.Stamped(batchID, capturedOn))
	}

	if err := a.priceRepo.Store(ctx, collection, out); err != nil {
		return nil, errors.Wrapf(err, "store %s", collection)
	}

	return out, nil
}
