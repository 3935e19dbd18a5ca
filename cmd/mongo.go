package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (a *App) initMongo(ctx context.Context) error {
	opts := options.Client().ApplyURI(a.Config.Mongo.URI)

	if a.Config.Mongo.User != "" {
		opts.SetAuth(options.Credential{
			AuthSource: a.Config.Mongo.DBName,
			Username:   a.Config.Mongo.User,
			Password:   a.Config.Mongo.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}

	a.Mongo = client

	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	return nil
}
