package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

// alertTemplate is one entry of the synthetic alert catalogue.
type alertTemplate struct {
	Title    string
	Message  string
	Type     string
	Priority string
	Location string
}

var alertTemplates = []alertTemplate{
	{
		Title: "Sudden wind advisory", Message: "Strong winds expected for the next two hours. Secure loose tents and banners.",
		Type: "weather", Priority: models.PriorityMedium, Location: "All sectors",
	},
	{
		Title: "Water supply interruption", Message: "Water supply in sector 6 paused for pipeline repair. Tankers are on the way.",
		Type: "infrastructure", Priority: models.PriorityMedium, Location: "Sector 6",
	},
	{
		Title: "Mobile network congestion", Message: "Voice and data networks are congested near the main ghats. Use SMS for urgent contact.",
		Type: "network", Priority: models.PriorityLow, Location: "Ram Ghat",
	},
	{
		Title: "Heat exhaustion cases rising", Message: "Medical camps report rising heat exhaustion cases. Rest in shade and drink ORS.",
		Type: "medical", Priority: models.PriorityHigh, Location: "All sectors",
	},
	{
		Title: "Route change announcement", Message: "The procession route now passes gate 3 instead of gate 2. Follow volunteer directions.",
		Type: "announcement", Priority: models.PriorityLow, Location: "Gate 3",
	},
}

// foundItemVocabulary feeds fabricated found_item cases.
var foundItemVocabulary = []string{
	"mobile phone", "cloth bag", "water bottle", "spectacles",
	"wallet", "shawl", "keys", "umbrella",
}

// InterfaceSimulationService defines the simulation lifecycle
type InterfaceSimulationService interface {
	Start()
	Stop()
}

// SimulationService makes the dataset look live without any real data
// source: it rewrites crowd readings, fabricates alerts, drifts event
// attendance and churns lost-and-found cases on independent timers.
// Each timer isolates its own failures; a bad tick is logged and the
// next tick runs normally. The only lifecycle control is Start/Stop
// for the whole set.
type SimulationService struct {
	Store  *storage.Store
	Config *config.Config
	Crowd  InterfaceCrowdService
	Events InterfaceEventService
	Alerts InterfaceAlertService
	Lost   InterfaceLostFoundService
	MQTT   InterfaceMQTTService

	// rngMu serializes rng access; tick bodies run on separate
	// goroutines and their timers regularly fire together.
	rngMu sync.Mutex
	rng   *rand.Rand
	now   func() time.Time

	// churn probabilities, overridable in tests
	resolveProbability float64
	newItemProbability float64

	mu      sync.Mutex
	stop    chan struct{}
	wg      sync.WaitGroup
	running bool
}

// NewSimulationService creates a new simulation service
func NewSimulationService(
	store *storage.Store,
	cfg *config.Config,
	crowd InterfaceCrowdService,
	events InterfaceEventService,
	alerts InterfaceAlertService,
	lost InterfaceLostFoundService,
	mqttService InterfaceMQTTService,
) *SimulationService {
	return &SimulationService{
		Store:              store,
		Config:             cfg,
		Crowd:              crowd,
		Events:             events,
		Alerts:             alerts,
		Lost:               lost,
		MQTT:               mqttService,
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
		now:                time.Now,
		resolveProbability: 0.3,
		newItemProbability: 0.2,
	}
}

// Start launches all four timers. Calling Start on a running
// simulation is a no-op.
func (s *SimulationService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})

	s.spawn("crowd refresh", s.Config.CrowdRefreshInterval, s.RefreshCrowd)
	s.spawn("alert generation", s.Config.AlertInterval, s.GenerateAlert)
	s.spawn("attendance drift", s.Config.AttendanceInterval, s.DriftAttendance)
	s.spawn("lost-and-found churn", s.Config.LostFoundChurnInterval, s.ChurnLostFound)

	config.Info("simulation started (crowd %s, alerts %s, attendance %s, lost-found %s)",
		s.Config.CrowdRefreshInterval, s.Config.AlertInterval,
		s.Config.AttendanceInterval, s.Config.LostFoundChurnInterval)
}

// Stop cancels all timers and waits for in-flight ticks to finish.
// There is no per-tick cancellation; a tick already running completes.
func (s *SimulationService) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()

	s.wg.Wait()
	config.Info("simulation stopped")
}

// spawn runs one timer loop. The tick body is wrapped so that neither
// an error return nor a panic stops the timer or the other jobs.
func (s *SimulationService) spawn(name string, interval time.Duration, tick func() error) {
	s.wg.Add(1)
	stop := s.stop
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.runTick(name, tick)
			}
		}
	}()
}

func (s *SimulationService) randFloat64() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64()
}

func (s *SimulationService) randIntn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

func (s *SimulationService) runTick(name string, tick func() error) {
	defer func() {
		if r := recover(); r != nil {
			config.Error("simulation %s tick panicked: %v", name, r)
		}
	}()
	if err := tick(); err != nil {
		config.Warning("simulation %s tick: %v", name, err)
	}
}

// RefreshCrowd recomputes every monitored location's reading as
// baseCount × timeOfDayMultiplier × jitter and replaces the stored
// record with a wholly rederived one. Locations without an existing
// record are skipped, never upserted; a skip is logged so a baseline/
// seed mismatch stays visible.
func (s *SimulationService) RefreshCrowd() error {
	multiplier := timeOfDayMultiplier(s.now().Hour())
	var firstErr error

	for _, b := range crowdBaselines {
		jitter := 0.85 + s.randFloat64()*0.3
		count := int(float64(b.BaseCount) * multiplier * jitter)

		updated, err := s.Crowd.RefreshReading(b.LocationName, count)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				config.Warning("crowd refresh: no record for location %q, skipping", b.LocationName)
				continue
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("refresh %q: %w", b.LocationName, err)
			}
			continue
		}

		if err := s.MQTT.PublishJSON(TopicCrowdUpdates, updated); err != nil {
			config.Warning("publish crowd update for %q: %v", b.LocationName, err)
		}
	}
	return firstErr
}

// timeOfDayMultiplier scales the baseline by hour of day: two peak
// windows (morning snan 5-9, evening aarti 17-21), a quiet overnight
// trough, and a neutral daytime level.
func timeOfDayMultiplier(hour int) float64 {
	switch {
	case hour >= 5 && hour < 9:
		return 1.5
	case hour >= 17 && hour < 21:
		return 1.4
	case hour >= 23 || hour < 4:
		return 0.3
	default:
		return 1.0
	}
}

// GenerateAlert creates one synthetic safety alert from a uniformly
// chosen template. It never deactivates or deduplicates earlier
// alerts; the active list grows for the life of the process.
func (s *SimulationService) GenerateAlert() error {
	tpl := alertTemplates[s.randIntn(len(alertTemplates))]
	durations := []string{"30 minutes", "1 hour", "2 hours", "until further notice"}

	s.Alerts.CreateAlert(&models.SafetyAlert{
		Title:         tpl.Title,
		Message:       tpl.Message,
		Type:          tpl.Type,
		Priority:      tpl.Priority,
		Location:      tpl.Location,
		AffectedAreas: []string{tpl.Location},
		Duration:      durations[s.randIntn(len(durations))],
		IsActive:      true,
	})
	return nil
}

// DriftAttendance nudges attendance for every event that has both a
// current count and a capacity: a build-up in the two hours before
// start, small fluctuation in the first hour after start, untouched
// otherwise. The result is always clamped to [0, capacity].
func (s *SimulationService) DriftAttendance() error {
	var firstErr error
	for _, event := range s.Store.SpiritualEvents.List() {
		if event.Capacity <= 0 {
			continue
		}
		hoursUntil := event.DateTime.Sub(s.now()).Hours()

		next := event.CurrentAttendees
		switch {
		case hoursUntil >= 0 && hoursUntil <= 2:
			next += 5 + s.randIntn(20)
		case hoursUntil < 0 && hoursUntil >= -1:
			next += s.randIntn(11) - 5
		default:
			continue
		}

		if _, err := s.Events.SetAttendance(event.ID, next); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("drift %q: %w", event.Name, err)
		}
	}
	return firstErr
}

// ChurnLostFound resolves one random active case with the configured
// probability (reunited for person cases, claimed for items) and,
// independently, fabricates a new found_item case with its own
// probability.
func (s *SimulationService) ChurnLostFound() error {
	var firstErr error

	if s.randFloat64() < s.resolveProbability {
		active := s.Lost.GetActiveCases()
		if len(active) > 0 {
			pick := active[s.randIntn(len(active))]
			if _, err := s.Lost.ResolveCase(pick.ID); err != nil {
				firstErr = fmt.Errorf("resolve case %s: %w", pick.ID, err)
			}
		}
	}

	if s.randFloat64() < s.newItemProbability {
		item := foundItemVocabulary[s.randIntn(len(foundItemVocabulary))]
		booth := 1 + s.randIntn(5)
		s.Lost.CreateCase(&models.LostAndFoundCase{
			CaseType:         models.CaseFoundItem,
			Description:      "Found: " + item + ", deposited at help booth " + fmt.Sprint(booth) + ".",
			ReporterName:     fmt.Sprintf("Volunteer booth %d", booth),
			ContactInfo:      fmt.Sprintf("+91-73425500%02d", booth),
			LastSeenLocation: crowdBaselines[s.randIntn(len(crowdBaselines))].LocationName,
			Status:           models.CaseStatusActive,
			IsApproved:       true,
		})
	}

	return firstErr
}
