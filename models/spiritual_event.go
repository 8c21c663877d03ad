package models

import "time"

// SpiritualEvent is a scheduled ritual, aarti or discourse.
// CurrentAttendees must stay within [0, Capacity] after any simulated
// update. IsLive is independent of the scheduled time; there is no
// automatic transition when DateTime passes.
type SpiritualEvent struct {
	Meta
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Location         string    `json:"location"`
	DateTime         time.Time `json:"dateTime"`
	DurationMinutes  int       `json:"durationMinutes,omitempty"`
	Capacity         int       `json:"capacity,omitempty"`
	CurrentAttendees int       `json:"currentAttendees"`
	IsLive           bool      `json:"isLive"`
	// ReminderUserIDs is an unvalidated list of opaque user ids; the
	// store enforces no foreign key on it.
	ReminderUserIDs []string `json:"reminderUserIds,omitempty"`
}
