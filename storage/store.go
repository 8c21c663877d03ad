package storage

import (
	"time"

	"smartkumbh-http-service/models"
)

// Collection names, used for notifications and the local mirror.
const (
	ColUsers              = "users"
	ColSafetyAlerts       = "safety_alerts"
	ColSpiritualEvents    = "spiritual_events"
	ColLostFound          = "lost_found_cases"
	ColCleanlinessReports = "cleanliness_reports"
	ColCrowdData          = "crowd_data"
	ColHelpBooths         = "help_booths"
	ColChatMessages       = "chat_messages"
)

// Store is the authoritative in-memory collection set for all portal
// entities. It is constructed once at startup and handed to the
// facade, the seeder and the simulation by reference; nothing mutates
// records except through the collection methods, which is what keeps
// the locking discipline trivial.
type Store struct {
	Users              *Collection[*models.User]
	SafetyAlerts       *Collection[*models.SafetyAlert]
	SpiritualEvents    *Collection[*models.SpiritualEvent]
	LostFoundCases     *Collection[*models.LostAndFoundCase]
	CleanlinessReports *Collection[*models.CleanlinessReport]
	CrowdData          *Collection[*models.CrowdData]
	HelpBooths         *Collection[*models.HelpBooth]
	ChatMessages       *Collection[*models.ChatMessage]

	Hub *Hub
}

// NewStore creates an empty store with all collections wired to one
// notification hub.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock lets tests inject a deterministic clock.
func NewStoreWithClock(now func() time.Time) *Store {
	hub := NewHub()
	return &Store{
		Users:              newCollection[*models.User](ColUsers, hub, now),
		SafetyAlerts:       newCollection[*models.SafetyAlert](ColSafetyAlerts, hub, now),
		SpiritualEvents:    newCollection[*models.SpiritualEvent](ColSpiritualEvents, hub, now),
		LostFoundCases:     newCollection[*models.LostAndFoundCase](ColLostFound, hub, now),
		CleanlinessReports: newCollection[*models.CleanlinessReport](ColCleanlinessReports, hub, now),
		CrowdData:          newCollection[*models.CrowdData](ColCrowdData, hub, now),
		HelpBooths:         newCollection[*models.HelpBooth](ColHelpBooths, hub, now),
		ChatMessages:       newCollection[*models.ChatMessage](ColChatMessages, hub, now),
		Hub:                hub,
	}
}
