package usecasees

import (
	"context"
	"errors"
	"fuelprice/internal/repository"
	repoMocks "fuelprice/internal/repository/mocks"
	"fuelprice/models"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssembler_Assemble(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps one date and batch id", func(t *testing.T) {
		priceRepo := repoMocks.NewPriceRepo(t)
		priceRepo.On("Store", ctx, repository.ByCities, mock.MatchedBy(func(in []models.PriceRecord) bool {
			return len(in) == 3 && in[0].CapturedOn == "05/01/27"
		})).Return(nil).Once()

		now := time.Date(2027, time.January, 5, 23, 59, 0, 0, time.UTC)
		a := NewAssembler(priceRepo, func() time.Time { return now })

		in := records(3)
		out, err := a.Assemble(ctx, repository.ByCities, in)
		require.NoError(t, err)
		require.Len(t, out, 3)

		_, err = uuid.Parse(out[0].BatchID)
		assert.NoError(t, err)

		for i, r := range out {
			assert.Equal(t, "05/01/27", r.CapturedOn)
			assert.Equal(t, out[0].BatchID, r.BatchID)
			assert.Equal(t, in[i].Label, r.Label)
			assert.Empty(t, in[i].CapturedOn)
		}
	})

	t.Run("empty batch is not stored", func(t *testing.T) {
		priceRepo := repoMocks.NewPriceRepo(t)
		a := NewAssembler(priceRepo, time.Now)

		out, err := a.Assemble(ctx, repository.ByState, nil)
		assert.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("store error", func(t *testing.T) {
		priceRepo := repoMocks.NewPriceRepo(t)
		priceRepo.On("Store", ctx, repository.AllStates, mock.Anything).Return(errors.New("no primary")).Once()

		a := NewAssembler(priceRepo, time.Now)

		out, err := a.Assemble(ctx, repository.AllStates, records(1))
		assert.Nil(t, out)
		assert.ErrorContains(t, err, "store DieselAllStates: no primary")
	})
}
