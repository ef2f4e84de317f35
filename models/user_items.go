package models

// UserItems is the full item set of one account. It is the unit of a batch
// write and the document a vault export file holds.
type UserItems struct {
	UserID string     `json:"userId" yaml:"userId"`
	Items  []ItemView `json:"items" yaml:"items"`
}
