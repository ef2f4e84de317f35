package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-authenticator-bridge/models"
)

func TestItemIDGenerator_Generate(t *testing.T) {
	g := NewItemIDGenerator()

	a, b := g.Generate(), g.Generate()
	require.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.Equal(t, byte('7'), a[14], "expected a version 7 uuid")
}

func TestAssignMissingIDs(t *testing.T) {
	items := []models.ItemView{{ID: "kept"}, {Name: "a"}, {Name: "b"}}
	next := 0
	gen := func() string { next++; return fmt.Sprintf("gen-%d", next) }

	assert.Equal(t, 2, AssignMissingIDs(items, gen))
	assert.Equal(t, []string{"kept", "gen-1", "gen-2"}, []string{items[0].ID, items[1].ID, items[2].ID})

	assert.Zero(t, AssignMissingIDs(items, gen))
}
