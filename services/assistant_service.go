package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"smartkumbh-http-service/config"
)

// InterfaceAssistantService defines the assistant interface
type InterfaceAssistantService interface {
	Answer(question, language string) string
}

// AssistantService answers pilgrim questions through an external
// generative-text API when one is configured, with a keyword-template
// local fallback used both when no API is configured and when the API
// call fails. The fallback means an assistant outage never turns into
// a request error.
type AssistantService struct {
	Config *config.Config
	client *http.Client
}

// NewAssistantService creates a new assistant service
func NewAssistantService(cfg *config.Config) InterfaceAssistantService {
	return &AssistantService{
		Config: cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type assistantRequest struct {
	Model    string             `json:"model"`
	Messages []assistantMessage `json:"messages"`
}

type assistantMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type assistantResponse struct {
	Choices []struct {
		Message assistantMessage `json:"message"`
	} `json:"choices"`
}

// Answer returns the reply for one question.
func (s *AssistantService) Answer(question, language string) string {
	if s.Config.AssistantAPIURL == "" || s.Config.AssistantAPIKey == "" {
		return s.templateAnswer(question)
	}

	answer, err := s.callAPI(question, language)
	if err != nil {
		config.Warning("assistant API call failed, using template answer: %v", err)
		return s.templateAnswer(question)
	}
	return answer
}

func (s *AssistantService) callAPI(question, language string) (string, error) {
	system := "You are the SmartKumbh pilgrim assistant. Answer briefly and practically."
	if language != "" && language != "en" {
		system += " Reply in language code: " + language + "."
	}

	body, err := json.Marshal(assistantRequest{
		Model: s.Config.AssistantModel,
		Messages: []assistantMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: question},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.Config.AssistantAPIURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Config.AssistantAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling assistant API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant API returned status code %d", resp.StatusCode)
	}

	var apiResp assistantResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("error decoding assistant response: %w", err)
	}
	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("assistant API returned no choices")
	}
	return apiResp.Choices[0].Message.Content, nil
}

// templateAnswer matches the question against a fixed keyword table.
func (s *AssistantService) templateAnswer(question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "bath") || strings.Contains(q, "snan") || strings.Contains(q, "ghat"):
		return "The main bathing ghats are Ram Ghat, Triveni Ghat and Siddhavat Ghat. Early morning (4-6 AM) is the least crowded time for the holy dip."
	case strings.Contains(q, "lost") || strings.Contains(q, "missing"):
		return "Please report lost persons or belongings at the nearest help booth, or file a report in the Lost & Found section. Announcements are made at all booths every 30 minutes."
	case strings.Contains(q, "crowd") || strings.Contains(q, "busy") || strings.Contains(q, "wait"):
		return "Live crowd levels for every ghat and temple are on the Crowd Status page. Mahakaleshwar Temple is usually busiest between 5 AM and 9 AM."
	case strings.Contains(q, "emergency") || strings.Contains(q, "police") || strings.Contains(q, "ambulance"):
		return "For emergencies dial 108 (ambulance) or 100 (police). Medical camps are located near Ram Ghat, Mangalnath and the central sector office."
	case strings.Contains(q, "aarti") || strings.Contains(q, "event") || strings.Contains(q, "darshan"):
		return "Today's events are listed on the Spiritual Events page. The Bhasma Aarti at Mahakaleshwar requires advance booking; evening Shipra Aarti at Ram Ghat is open to all."
	case strings.Contains(q, "toilet") || strings.Contains(q, "water") || strings.Contains(q, "clean"):
		return "Drinking water stations and toilet blocks are marked on the map at every sector gate. Use the Cleanliness page to report a facility that needs attention."
	default:
		return "I can help with bathing times, crowd levels, events, lost and found, and emergency contacts. You can also visit any help booth for in-person assistance."
	}
}
