package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-authenticator-bridge/internal/validators"
	"github.com/MKhiriev/go-authenticator-bridge/models"
)

type BridgeItemValidationService struct {
	inner     BridgeItemService
	validator validators.Validator
}

func NewBridgeItemValidationService() BridgeItemServiceWrapper {
	return &BridgeItemValidationService{
		validator: validators.NewBridgeItemValidator(),
	}
}

func (v *BridgeItemValidationService) DeleteAllForUser(ctx context.Context, userID string) error {
	if err := v.validator.Validate(ctx, models.UserItems{UserID: userID}, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.DeleteAllForUser(ctx, userID)
}

func (v *BridgeItemValidationService) FetchAllForUser(ctx context.Context, userID string) ([]models.ItemView, error) {
	if err := v.validator.Validate(ctx, models.UserItems{UserID: userID}, validators.FieldUserID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.FetchAllForUser(ctx, userID)
}

func (v *BridgeItemValidationService) FetchTemporaryItem(ctx context.Context) (*models.ItemView, error) {
	return v.inner.FetchTemporaryItem(ctx)
}

func (v *BridgeItemValidationService) InsertItems(ctx context.Context, items []models.ItemView, userID string) error {
	if err := v.validator.Validate(ctx, models.UserItems{UserID: userID, Items: items}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.InsertItems(ctx, items, userID)
}

func (v *BridgeItemValidationService) InsertTemporaryItem(ctx context.Context, item models.ItemView) error {
	if err := v.validator.Validate(ctx, item); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.InsertTemporaryItem(ctx, item)
}

func (v *BridgeItemValidationService) IsSyncOn(ctx context.Context) (bool, error) {
	return v.inner.IsSyncOn(ctx)
}

func (v *BridgeItemValidationService) ReplaceAllItems(ctx context.Context, items []models.ItemView, userID string) error {
	if err := v.validator.Validate(ctx, models.UserItems{UserID: userID, Items: items}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ReplaceAllItems(ctx, items, userID)
}

func (v *BridgeItemValidationService) SharedItemsFeed(ctx context.Context) (<-chan models.SharedItemsUpdate, error) {
	return v.inner.SharedItemsFeed(ctx)
}

func (v *BridgeItemValidationService) Wrap(wrapper BridgeItemService) BridgeItemService {
	v.inner = wrapper
	return v
}
