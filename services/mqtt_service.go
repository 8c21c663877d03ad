package services

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"smartkumbh-http-service/config"
)

// MQTT topics published by the portal.
const (
	TopicCrowdUpdates        = "smartkumbh/crowd/updates"
	TopicEmergencyBroadcast  = "smartkumbh/emergency/broadcast"
	TopicEmergencyEvacuation = "smartkumbh/emergency/evacuation"
)

// InterfaceMQTTService defines the MQTT publisher interface
type InterfaceMQTTService interface {
	Connect() error
	PublishJSON(topic string, payload interface{}) error
	Disconnect()
	IsConnected() bool
}

// MQTTService is a thin publisher used to fan portal events out to a
// broker. The whole service is optional: when no broker is configured
// every publish is a silent no-op, so the portal runs standalone.
type MQTTService struct {
	Config *config.Config
	Client mqtt.Client
}

// NewMQTTService creates a new MQTT publisher
func NewMQTTService(cfg *config.Config) InterfaceMQTTService {
	return &MQTTService{
		Config: cfg,
	}
}

// Connect establishes the broker connection. Returns nil immediately
// when no broker is configured.
func (s *MQTTService) Connect() error {
	if s.Config.MQTTBroker == "" {
		config.Info("MQTT broker not configured, publishing disabled")
		return nil
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Config.MQTTBroker)
	opts.SetClientID(s.Config.MQTTClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		config.Warning("MQTT connection lost: %v", err)
	})
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		config.Info("MQTT connected to %s", s.Config.MQTTBroker)
	})

	s.Client = mqtt.NewClient(opts)
	if token := s.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect MQTT broker: %w", token.Error())
	}
	return nil
}

// PublishJSON publishes a JSON-encoded payload at QoS 1. No-op when
// the broker is not configured or not connected.
func (s *MQTTService) PublishJSON(topic string, payload interface{}) error {
	if s.Client == nil || !s.Client.IsConnected() {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	token := s.Client.Publish(topic, 1, false, raw)
	token.Wait()
	return token.Error()
}

// Disconnect closes the broker connection
func (s *MQTTService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
}

// IsConnected reports whether the broker connection is up
func (s *MQTTService) IsConnected() bool {
	return s.Client != nil && s.Client.IsConnected()
}
