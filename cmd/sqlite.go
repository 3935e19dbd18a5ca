package main

import (
	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

func (a *App) InitSQLite(dbFileName string) error {
	db, err := sqlx.Connect("sqlite", dbFileName)
	if err != nil {
		return err
	}

	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	a.DB = db

	return nil
}
