package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-authenticator-bridge/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldUserID targets the owning account. It must be set and must not
	// be the temporary account.
	FieldUserID = "user_id"

	// FieldAnyUserID targets the owning account but accepts the temporary one.
	FieldAnyUserID = "any_user_id"

	// FieldItems validates every item of a batch with the item defaults.
	FieldItems = "items"

	// FieldUniqueIDs rejects a batch that repeats an item id.
	FieldUniqueIDs = "unique_ids"

	// FieldItemID targets the id of a single item.
	FieldItemID = "id"

	// FieldName targets the name of a single item.
	FieldName = "name"
)

// BridgeItemValidator validates shared items and per-account batches.
type BridgeItemValidator struct {
}

func NewBridgeItemValidator() Validator {
	return &BridgeItemValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.ItemView / *models.ItemView (default fields: id, name)
//   - models.UserItems / *models.UserItems (default fields: user_id, items, unique_ids)
func (v *BridgeItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemView:
		return v.validateItem(ctx, value, fields...)
	case *models.ItemView:
		return v.validateItem(ctx, *value, fields...)

	case models.UserItems:
		return v.validateUserItems(ctx, value, fields...)
	case *models.UserItems:
		return v.validateUserItems(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BridgeItemValidator) validateItem(ctx context.Context, item models.ItemView, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if item.ID == "" {
				return ErrEmptyItemID
			}
		case FieldName:
			if item.Name == "" {
				return fmt.Errorf("%w (id=%s)", ErrEmptyItemName, item.ID)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BridgeItemValidator) validateUserItems(ctx context.Context, batch models.UserItems, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldItems, FieldUniqueIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if batch.UserID == "" {
				return ErrInvalidUserID
			}
			if batch.UserID == models.TemporaryUserID {
				return ErrTemporaryUserID
			}
		case FieldAnyUserID:
			if batch.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldItems:
			for _, item := range batch.Items {
				if err := v.validateItem(ctx, item); err != nil {
					return err
				}
			}
		case FieldUniqueIDs:
			seen := make(map[string]struct{}, len(batch.Items))
			for _, item := range batch.Items {
				if _, ok := seen[item.ID]; ok {
					return fmt.Errorf("%w (id=%s)", ErrDuplicateItemID, item.ID)
				}
				seen[item.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
