package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrDecodingStoredItem = errors.New("stored item cannot be decoded")
)
