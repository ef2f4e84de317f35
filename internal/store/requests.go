package store

import (
	"github.com/MKhiriev/go-authenticator-bridge/models"
)

// Predicate selects bridge records. Empty fields do not filter.
type Predicate struct {
	// UserID matches the owner of the record.
	UserID string
	// ID matches the item id assigned by the producing app.
	ID string
	// ExcludeUserID drops records owned by this user.
	ExcludeUserID string
}

// ByUserID selects every record of userID.
func ByUserID(userID string) Predicate {
	return Predicate{UserID: userID}
}

// ByID selects the record id of userID.
func ByID(userID, id string) Predicate {
	return Predicate{UserID: userID, ID: id}
}

func (p Predicate) matches(r models.BridgeItemRecord) bool {
	if p.UserID != "" && r.UserID != p.UserID {
		return false
	}
	if p.ID != "" && r.ID != p.ID {
		return false
	}
	if p.ExcludeUserID != "" && r.UserID == p.ExcludeUserID {
		return false
	}
	return true
}

// BatchDeleteRequest describes a batch delete.
type BatchDeleteRequest struct {
	Predicate Predicate
}

// BatchInsertRequest describes a batch insert of already encrypted items.
type BatchInsertRequest struct {
	UserID string
	Items  []models.EncryptedItem
}

// ChangeSet lists the object ids a batch touched.
type ChangeSet struct {
	Deleted  []int64
	Inserted []int64

	// rows behind Inserted, merged into contexts without a re-read
	inserted []models.BridgeItemRecord
}

// Empty reports whether the batch changed nothing.
func (c ChangeSet) Empty() bool {
	return len(c.Deleted) == 0 && len(c.Inserted) == 0
}
