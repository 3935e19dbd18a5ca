package main

import (
	"context"
	"fuelprice/internal/repository"
	mongoRepo "fuelprice/internal/repository/mongo"
	"fuelprice/internal/repository/postgres"
	"fuelprice/internal/repository/sqlite"
)

// initStore connects the configured backend and returns its repository.
func (a *App) initStore(ctx context.Context) (repository.PriceRepo, error) {
	switch a.Config.StoreDriver {
	case StoreMongo:
		if err := a.initMongo(ctx); err != nil {
			return nil, err
		}

		return mongoRepo.NewPriceRepository(a.Mongo, a.Config.Mongo.DBName), nil
	case StorePostgres:
		if err := a.InitDB(a.Config.DB); err != nil {
			return nil, err
		}

		repo := postgres.NewPriceRepository(a.DB)
		if err := repo.Migrate(ctx); err != nil {
			return nil, err
		}

		return repo, nil
	case StoreSQLite:
		if err := a.InitSQLite(a.Config.SQLitePath); err != nil {
			return nil, err
		}

		repo := sqlite.NewPriceRepository(a.DB)
		if err := repo.Migrate(ctx); err != nil {
			return nil, err
		}

		return repo, nil
	default:
		return nil, ErrUnknownStoreDriver
	}
}

func (a *App) close(ctx context.Context) {
	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			a.Logger.WithField("method", "close").Error(err)
		}
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.WithField("method", "close").Error(err)
		}
	}

	if a.PromTail != nil {
		a.PromTail.Close()
	}
}
