package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	AppName           string `validate:"required"`
	HTTPAddr          string `validate:"required"`
	LogLevel          string `validate:"oneof=DEBUG INFO ERROR"`
	LogFile           string
	FuelBaseURL       string `validate:"required,url"`
	CaptureTZ         string
	StoreDriver       string `validate:"oneof=mongo postgres sqlite"`
	ScheduleAllStates string
	LokiAddress       string
	SQLitePath        string
	Telegram          *Telegram
	Mongo             *Mongo
	DB                *DB
}

type Telegram struct {
	ApiToken string `validate:"required"`
	ChatID   int64  `validate:"required"`
}

type Mongo struct {
	URI      string `validate:"required"`
	User     string
	Password string
	DBName   string `validate:"required"`
}

type DB struct {
	Host     string `validate:"required"`
	User     string `validate:"required"`
	Password string
	DBName   string `validate:"required"`
	SSLMode  string `validate:"required"`
}

var (
	ErrEnvNotFound        = errors.New("err env not found")
	ErrUnknownStoreDriver = errors.New("unknown store driver")
)

func (a *App) loadConfig(confFileName string) error {
	var cfg Config

	err := godotenv.Load(confFileName)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg.AppName = cfg.get("APP_NAME", "fuelprice")
	cfg.HTTPAddr = cfg.get("HTTP_ADDR", ":8080")
	cfg.LogLevel = cfg.get("LOG_LEVEL", "INFO")
	cfg.LogFile = cfg.get("LOG_FILE", "")
	cfg.FuelBaseURL = cfg.get("FUEL_BASE_URL", "https://www.ndtv.com/fuel-prices")
	cfg.CaptureTZ = cfg.get("CAPTURE_TZ", "")
	cfg.StoreDriver = cfg.get("STORE_DRIVER", StoreMongo)
	cfg.ScheduleAllStates = cfg.get("SCHEDULE_ALL_STATES", "")
	cfg.LokiAddress = cfg.get("LOKI_ADDRESS", "")

	switch cfg.StoreDriver {
	case StoreMongo:
		var m Mongo

		if m.URI, err = cfg.set("MONGO_URI"); err != nil {
			return err
		}

		m.User = cfg.get("MONGO_USER", "")
		m.Password = cfg.get("MONGO_PASSWORD", "")
		m.DBName = cfg.get("MONGO_DBNAME", "FR24")

		cfg.Mongo = &m
	case StorePostgres:
		var db DB

		if db.Host, err = cfg.set("PG_HOST"); err != nil {
			return err
		}

		if db.User, err = cfg.set("PG_USER"); err != nil {
			return err
		}

		if db.Password, err = cfg.set("PG_PASSWORD"); err != nil {
			return err
		}

		if db.DBName, err = cfg.set("PG_DBNAME"); err != nil {
			return err
		}

		db.SSLMode = cfg.get("PG_SSL_MODE", "disable")

		cfg.DB = &db
	case StoreSQLite:
		cfg.SQLitePath = cfg.get("SQLITE_PATH", "./store.db")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStoreDriver, cfg.StoreDriver)
	}

	if token := cfg.get("TELEGRAM_API_TOKEN", ""); token != "" {
		chatID, err := cfg.set("TELEGRAM_CHAT_ID")
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("TELEGRAM_CHAT_ID: %w", err)
		}

		cfg.Telegram = &Telegram{ApiToken: token, ChatID: id}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return err
	}

	a.Config = &cfg

	return nil
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode)
}

// Location is the zone capture dates are written in. Empty means local time.
func (c *Config) Location() (*time.Location, error) {
	if c.CaptureTZ == "" {
		return time.Local, nil
	}

	return time.LoadLocation(c.CaptureTZ)
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", fmt.Errorf("%w: %s", ErrEnvNotFound, key)
	}

	return os.Getenv(key), nil
}

func (c *Config) get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
