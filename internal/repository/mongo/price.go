package mongo

import (
	"context"
	"fuelprice/internal/repository"
	"fuelprice/internal/repository/mongo/structs"
	"fuelprice/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

const DefaultDBName = "FR24"

type PriceRepository struct {
	conn *mongo.Client
	db   *mongo.Database
}

var _ repository.PriceRepo = (*PriceRepository)(nil)

func NewPriceRepository(conn *mongo.Client, dbName string) *PriceRepository {
	if dbName == "" {
		dbName = DefaultDBName
	}

	return &PriceRepository{conn: conn, db: conn.Database(dbName)}
}

func (r *PriceRepository) Store(ctx context.Context, collection repository.Collection, records []models.PriceRecord) error {
	if _, err := collection.Table(); err != nil {
		return err
	}

	if len(records) == 0 {
		return repository.ErrEmptyBatch
	}

	docs := make([]interface{}, 0, len(records))
	for _, record := range records {
		docs = append(docs, structs.NewPriceDocument(record))
	}

	if _, err := r.db.Collection(collection.ToString()).InsertMany(ctx, docs); err != nil {
		return errors.Wrapf(err, "insert into %s", collection)
	}

	return nil
}
