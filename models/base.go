package models

import "time"

// Meta carries the fields shared by every portal entity: a generated
// identifier that never changes after creation, and creation/update
// timestamps maintained by the storage layer.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID returns the record identifier.
func (m *Meta) EntityID() string { return m.ID }

// Stamp assigns the identifier and both timestamps at creation time.
func (m *Meta) Stamp(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Touch bumps the update timestamp after a mutation.
func (m *Meta) Touch(now time.Time) { m.UpdatedAt = now }
