package utils

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-authenticator-bridge/models"
)

// ItemIDGenerator issues ids for bridge items that arrive without one: items
// parked from the command line and vault export entries with an empty id.
// Ids are UUIDv7, so items imported in one pass sort in the order they got
// their ids.
type ItemIDGenerator struct{}

func NewItemIDGenerator() *ItemIDGenerator {
	return &ItemIDGenerator{}
}

func (g *ItemIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// the v7 clock source failed; a random id still keeps items apart
		return uuid.NewString()
	}
	return id.String()
}

// AssignMissingIDs sets an id from generate on every item whose id is empty
// and reports how many it set. Items that carry an id keep it, since the
// other app matches items by id across syncs.
func AssignMissingIDs(items []models.ItemView, generate func() string) int {
	assigned := 0
	for i := range items {
		if items[i].ID != "" {
			continue
		}
		items[i].ID = generate()
		assigned++
	}
	return assigned
}
