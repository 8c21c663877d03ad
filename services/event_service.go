package services

import (
	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

// InterfaceEventService defines the spiritual event service interface
type InterfaceEventService interface {
	GetAllEvents() []*models.SpiritualEvent
	CreateEvent(event *models.SpiritualEvent) *models.SpiritualEvent
	SetAttendance(id string, attendees int) (*models.SpiritualEvent, error)
}

// EventService provides spiritual event operations
type EventService struct {
	Store  *storage.Store
	Config *config.Config
}

// NewEventService creates a new spiritual event service
func NewEventService(store *storage.Store, cfg *config.Config) InterfaceEventService {
	return &EventService{
		Store:  store,
		Config: cfg,
	}
}

// 1 GetAllEvents returns all spiritual events
func (s *EventService) GetAllEvents() []*models.SpiritualEvent {
	return s.Store.SpiritualEvents.List()
}

// 2 CreateEvent creates a new spiritual event. Attendance starts
// clamped to [0, capacity].
func (s *EventService) CreateEvent(event *models.SpiritualEvent) *models.SpiritualEvent {
	event.CurrentAttendees = clampAttendance(event.CurrentAttendees, event.Capacity)
	return s.Store.SpiritualEvents.Create(event)
}

// 3 SetAttendance overwrites the attendee count, clamped to
// [0, capacity]. Used by the simulation's attendance drift.
func (s *EventService) SetAttendance(id string, attendees int) (*models.SpiritualEvent, error) {
	event, err := s.Store.SpiritualEvents.Get(id)
	if err != nil {
		return nil, err
	}
	return s.Store.SpiritualEvents.Update(id, map[string]interface{}{
		"currentAttendees": clampAttendance(attendees, event.Capacity),
	})
}

func clampAttendance(attendees, capacity int) int {
	if attendees < 0 {
		return 0
	}
	if capacity > 0 && attendees > capacity {
		return capacity
	}
	return attendees
}
