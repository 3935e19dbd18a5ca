package mongo

import (
	"context"
	"fuelprice/internal/repository"
	"fuelprice/internal/repository/mongo/structs"
	"fuelprice/models"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestNewPriceDocument(t *testing.T) {
	record := models.NewPriceRecord("Kerala", "₹ 96.52", "-0.11").Stamped("b-1", "19/10/26")

	doc := structs.NewPriceDocument(record)

	assert.True(t, doc.ID.IsZero())
	assert.Equal(t, "Kerala", doc.State)
	assert.Equal(t, "Decrease", doc.ChangeStatus)
	assert.Equal(t, "19/10/26", doc.Date)
	assert.Equal(t, "b-1", doc.BatchID)
}

func TestStore(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI is not set")
	}

	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	repo := NewPriceRepository(client, "FR24_test")

	batchID := uuid.NewString()
	records := []models.PriceRecord{
		models.NewPriceRecord("Pune", "₹ 92.40", "+0.12").Stamped(batchID, "19/10/26"),
		models.NewPriceRecord("Pune", "₹ 92.28", "0.00").Stamped(batchID, "19/10/26"),
	}

	t.Run("Store", func(t *testing.T) {
		assert.NoError(t, repo.Store(ctx, repository.ByCities, records))

		count, err := repo.db.Collection(repository.ByCities.ToString()).
			CountDocuments(ctx, bson.D{{Key: "batch_id", Value: batchID}})
		assert.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.ErrorIs(t, repo.Store(ctx, repository.ByCities, nil), repository.ErrEmptyBatch)
	})

	t.Run("Unknown collection", func(t *testing.T) {
		assert.ErrorIs(t, repo.Store(ctx, repository.Collection("Petrol"), records), repository.ErrUnknownCollection)
	})
}
