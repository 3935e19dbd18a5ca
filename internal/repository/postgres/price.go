package postgres

import (
	"context"
	"fmt"
	"fuelprice/internal/repository"
	"fuelprice/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const schema = `CREATE TABLE IF NOT EXISTS %s (
	id            BIGSERIAL PRIMARY KEY,
	batch_id      UUID NOT NULL,
	state         TEXT NOT NULL,
	price         TEXT NOT NULL,
	change        TEXT NOT NULL,
	change_status TEXT NOT NULL,
	captured_on   TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const insertQuery = "INSERT INTO %s (batch_id,state,price,change,change_status,captured_on) VALUES (:batch_id,:state,:price,:change,:change_status,:captured_on)"

type PriceRepository struct {
	conn *sqlx.DB
}

var _ repository.PriceRepo = (*PriceRepository)(nil)

func NewPriceRepository(conn *sqlx.DB) *PriceRepository {
	return &PriceRepository{
		conn: conn,
	}
}

// Migrate creates the tables of every collection.
func (r *PriceRepository) Migrate(ctx context.Context) error {
	for _, collection := range repository.Collections {
		table, err := collection.Table()
		if err != nil {
			return err
		}

		if _, err := r.conn.ExecContext(ctx, fmt.Sprintf(schema, table)); err != nil {
			return errors.Wrapf(err, "create table %s", table)
		}
	}

	return nil
}

func (r *PriceRepository) Store(ctx context.Context, collection repository.Collection, records []models.PriceRecord) error {
	table, err := collection.Table()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return repository.ErrEmptyBatch
	}

	if _, err := r.conn.NamedExecContext(ctx, fmt.Sprintf(insertQuery, table), records); err != nil {
		return errors.Wrapf(err, "insert into %s", table)
	}

	return nil
}

func (r *PriceRepository) getByBatchID(ctx context.Context, collection repository.Collection, batchID string) ([]models.PriceRecord, error) {
	table, err := collection.Table()
	if err != nil {
		return nil, err
	}

	out := make([]models.PriceRecord, 0)
	query := fmt.Sprintf("SELECT batch_id,state,price,change,change_status,captured_on FROM %s WHERE batch_id = $1 ORDER BY id", table)

	if err := r.conn.SelectContext(ctx, &out, query, batchID); err != nil {
		return nil, err
	}

	return out, nil
}
