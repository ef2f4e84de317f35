package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrTemporaryUserID = errors.New("temporary user ID is reserved")
	ErrEmptyItemID     = errors.New("item id is required")
	ErrEmptyItemName   = errors.New("item name is required")
	ErrDuplicateItemID = errors.New("duplicate item id in batch")
)
