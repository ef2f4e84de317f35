package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-authenticator-bridge/internal/validators"
	"github.com/MKhiriev/go-authenticator-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBridgeItemService records which calls reached the inner service.
type stubBridgeItemService struct {
	calls []string
}

func (s *stubBridgeItemService) DeleteAllForUser(context.Context, string) error {
	s.calls = append(s.calls, "DeleteAllForUser")
	return nil
}

func (s *stubBridgeItemService) FetchAllForUser(context.Context, string) ([]models.ItemView, error) {
	s.calls = append(s.calls, "FetchAllForUser")
	return nil, nil
}

func (s *stubBridgeItemService) FetchTemporaryItem(context.Context) (*models.ItemView, error) {
	s.calls = append(s.calls, "FetchTemporaryItem")
	return nil, nil
}

func (s *stubBridgeItemService) InsertItems(context.Context, []models.ItemView, string) error {
	s.calls = append(s.calls, "InsertItems")
	return nil
}

func (s *stubBridgeItemService) InsertTemporaryItem(context.Context, models.ItemView) error {
	s.calls = append(s.calls, "InsertTemporaryItem")
	return nil
}

func (s *stubBridgeItemService) IsSyncOn(context.Context) (bool, error) {
	s.calls = append(s.calls, "IsSyncOn")
	return true, nil
}

func (s *stubBridgeItemService) ReplaceAllItems(context.Context, []models.ItemView, string) error {
	s.calls = append(s.calls, "ReplaceAllItems")
	return nil
}

func (s *stubBridgeItemService) SharedItemsFeed(context.Context) (<-chan models.SharedItemsUpdate, error) {
	s.calls = append(s.calls, "SharedItemsFeed")
	return nil, nil
}

func newValidated() (BridgeItemService, *stubBridgeItemService) {
	inner := &stubBridgeItemService{}
	return NewBridgeItemValidationService().Wrap(inner), inner
}

func TestBridgeItemValidationService_Rejects(t *testing.T) {
	ctx := context.Background()
	good := []models.ItemView{{ID: "1", Name: "one"}}

	tests := []struct {
		name    string
		call    func(BridgeItemService) error
		wantErr error
	}{
		{
			name:    "delete without user",
			call:    func(s BridgeItemService) error { return s.DeleteAllForUser(ctx, "") },
			wantErr: validators.ErrInvalidUserID,
		},
		{
			name:    "delete temporary user",
			call:    func(s BridgeItemService) error { return s.DeleteAllForUser(ctx, models.TemporaryUserID) },
			wantErr: validators.ErrTemporaryUserID,
		},
		{
			name: "fetch without user",
			call: func(s BridgeItemService) error {
				_, err := s.FetchAllForUser(ctx, "")
				return err
			},
			wantErr: validators.ErrInvalidUserID,
		},
		{
			name:    "insert item without id",
			call:    func(s BridgeItemService) error { return s.InsertItems(ctx, []models.ItemView{{Name: "n"}}, "u1") },
			wantErr: validators.ErrEmptyItemID,
		},
		{
			name:    "insert for temporary user",
			call:    func(s BridgeItemService) error { return s.InsertItems(ctx, good, models.TemporaryUserID) },
			wantErr: validators.ErrTemporaryUserID,
		},
		{
			name: "replace with duplicates",
			call: func(s BridgeItemService) error {
				return s.ReplaceAllItems(ctx, append(good, good...), "u1")
			},
			wantErr: validators.ErrDuplicateItemID,
		},
		{
			name:    "temporary item without name",
			call:    func(s BridgeItemService) error { return s.InsertTemporaryItem(ctx, models.ItemView{ID: "t"}) },
			wantErr: validators.ErrEmptyItemName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, inner := newValidated()
			err := tt.call(svc)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, inner.calls)
		})
	}
}

func TestBridgeItemValidationService_Delegates(t *testing.T) {
	ctx := context.Background()
	good := []models.ItemView{{ID: "1", Name: "one"}}
	svc, inner := newValidated()

	require.NoError(t, svc.DeleteAllForUser(ctx, "u1"))
	_, err := svc.FetchAllForUser(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.FetchTemporaryItem(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.InsertItems(ctx, good, "u1"))
	require.NoError(t, svc.InsertItems(ctx, nil, "u1"))
	require.NoError(t, svc.InsertTemporaryItem(ctx, good[0]))
	on, err := svc.IsSyncOn(ctx)
	require.NoError(t, err)
	assert.True(t, on)
	require.NoError(t, svc.ReplaceAllItems(ctx, good, "u1"))
	_, err = svc.SharedItemsFeed(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"DeleteAllForUser", "FetchAllForUser", "FetchTemporaryItem",
		"InsertItems", "InsertItems", "InsertTemporaryItem",
		"IsSyncOn", "ReplaceAllItems", "SharedItemsFeed",
	}, inner.calls)
}
