package models

import "time"

// LostAndFoundCase tracks a missing or found person/item report.
// Status moves one way in practice: active cases end in a terminal
// state (resolved, reunited, claimed) and are never reopened.
type LostAndFoundCase struct {
	Meta
	CaseType         string     `json:"type"` // missing_person, missing_item, found_item, found_person
	Description      string     `json:"description"`
	ReporterName     string     `json:"reporterName,omitempty"`
	ContactInfo      string     `json:"contactInfo"`
	LastSeenLocation string     `json:"lastSeenLocation,omitempty"`
	LastSeenTime     *time.Time `json:"lastSeenTime,omitempty"`
	Status           string     `json:"status"` // active, found, resolved, reunited, claimed
	IsApproved       bool       `json:"isApproved"`
	ResolvedAt       *time.Time `json:"resolvedAt,omitempty"`
}

// Lost-and-found case types.
const (
	CaseMissingPerson = "missing_person"
	CaseMissingItem   = "missing_item"
	CaseFoundItem     = "found_item"
	CaseFoundPerson   = "found_person"
)

// Lost-and-found statuses.
const (
	CaseStatusActive   = "active"
	CaseStatusFound    = "found"
	CaseStatusResolved = "resolved"
	CaseStatusReunited = "reunited"
	CaseStatusClaimed  = "claimed"
)
