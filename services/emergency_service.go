package services

import (
	"errors"
	"time"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

// InterfaceEmergencyService defines the emergency service interface
type InterfaceEmergencyService interface {
	BroadcastSMS(message, area string) (int, error)
	ActivateEvacuation(zone, reason string) (*models.SafetyAlert, error)
}

// EmergencyService handles the emergency actions. SMS delivery is a
// stub: the broadcast is logged and handed to the broker when one is
// configured, but no real message leaves the system.
type EmergencyService struct {
	Store  *storage.Store
	Config *config.Config
	Alerts InterfaceAlertService
	MQTT   InterfaceMQTTService
}

// NewEmergencyService creates a new emergency service
func NewEmergencyService(store *storage.Store, cfg *config.Config, alerts InterfaceAlertService, mqttService InterfaceMQTTService) InterfaceEmergencyService {
	return &EmergencyService{
		Store:  store,
		Config: cfg,
		Alerts: alerts,
		MQTT:   mqttService,
	}
}

// 1 BroadcastSMS stages an SMS broadcast to every non-blocked user and
// returns the recipient count. Broker publish failures are logged, not
// propagated: the broadcast is best-effort by contract.
func (s *EmergencyService) BroadcastSMS(message, area string) (int, error) {
	if message == "" {
		return 0, errors.New("broadcast message must not be empty")
	}

	recipients := 0
	for _, u := range s.Store.Users.List() {
		if !u.IsBlocked && u.Phone != "" {
			recipients++
		}
	}

	config.Info("emergency SMS broadcast staged: area=%q recipients=%d message=%q", area, recipients, message)

	if err := s.MQTT.PublishJSON(TopicEmergencyBroadcast, map[string]interface{}{
		"message":    message,
		"area":       area,
		"recipients": recipients,
		"timestamp":  time.Now(),
	}); err != nil {
		config.Warning("publish emergency broadcast: %v", err)
	}

	return recipients, nil
}

// 2 ActivateEvacuation creates a critical safety alert for the zone as
// a side effect and announces it on the broker.
func (s *EmergencyService) ActivateEvacuation(zone, reason string) (*models.SafetyAlert, error) {
	if zone == "" {
		return nil, errors.New("evacuation zone must not be empty")
	}

	alert := s.Alerts.CreateAlert(&models.SafetyAlert{
		Title:         "EVACUATION: " + zone,
		Message:       "Immediate evacuation has been activated for " + zone + ". " + reason + " Follow volunteer instructions and move to the nearest safe assembly point.",
		Type:          "crowd",
		Priority:      models.PriorityCritical,
		Location:      zone,
		AffectedAreas: []string{zone},
		IsActive:      true,
	})

	if err := s.MQTT.PublishJSON(TopicEmergencyEvacuation, alert); err != nil {
		config.Warning("publish evacuation alert: %v", err)
	}

	return alert, nil
}
