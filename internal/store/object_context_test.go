package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-authenticator-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectContext_LoadsOnceAndSorts(t *testing.T) {
	calls := 0
	oc := newObjectContext("test", func(context.Context, Predicate) ([]models.BridgeItemRecord, error) {
		calls++
		return []models.BridgeItemRecord{
			{ObjectID: 1, ID: "b", UserID: "u2"},
			{ObjectID: 2, ID: "b", UserID: "u1"},
			{ObjectID: 3, ID: "a", UserID: "u1"},
		}, nil
	})

	ctx := testContext()
	records, err := oc.Fetch(ctx, Predicate{})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, []int64{records[0].ObjectID, records[1].ObjectID, records[2].ObjectID})

	n, err := oc.Count(ctx, Predicate{ExcludeUserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, calls)
}

func TestObjectContext_LoadErrorIsRetried(t *testing.T) {
	fail := true
	oc := newObjectContext("test", func(context.Context, Predicate) ([]models.BridgeItemRecord, error) {
		if fail {
			return nil, errDB
		}
		return []models.BridgeItemRecord{{ObjectID: 1, ID: "a", UserID: "u1"}}, nil
	})

	ctx := testContext()
	_, err := oc.Fetch(ctx, Predicate{})
	assert.ErrorIs(t, err, errDB)

	fail = false
	n, err := oc.Count(ctx, Predicate{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestObjectContext_MergeAppliesDeletesAndInserts(t *testing.T) {
	oc := newObjectContext("test", func(context.Context, Predicate) ([]models.BridgeItemRecord, error) {
		return []models.BridgeItemRecord{
			{ObjectID: 1, ID: "a", UserID: "u1"},
			{ObjectID: 2, ID: "b", UserID: "u1"},
		}, nil
	})
	ctx := testContext()
	_, err := oc.Fetch(ctx, Predicate{})
	require.NoError(t, err)

	oc.mergeChanges(ChangeSet{
		Deleted:  []int64{1, 2},
		Inserted: []int64{5},
		inserted: []models.BridgeItemRecord{{ObjectID: 5, ID: "c", UserID: "u1"}},
	})

	records, err := oc.Fetch(ctx, ByUserID("u1"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "c", records[0].ID)
}
