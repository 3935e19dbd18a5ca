package repository

import "errors"

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrEmptyBatch        = errors.New("empty batch")
)
