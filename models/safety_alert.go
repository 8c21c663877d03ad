package models

import "time"

// SafetyAlert is a broadcast notice shown to pilgrims. Expiry is
// informational only; the store never deactivates an alert on its own.
type SafetyAlert struct {
	Meta
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	Type          string     `json:"type"`     // weather, crowd, medical, infrastructure, network, announcement
	Priority      string     `json:"priority"` // low, medium, high, critical
	Location      string     `json:"location,omitempty"`
	AffectedAreas []string   `json:"affectedAreas,omitempty"`
	Duration      string     `json:"duration,omitempty"` // human-readable, e.g. "2 hours"
	IsActive      bool       `json:"isActive"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

// Alert priorities accepted by the facade.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)
