package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Server
	ServerPort string

	// Redis (optional; stats cache and seed marker fall back to local
	// alternatives when unset)
	RedisHost string
	RedisPort string
	RedisDB   int

	// MQTT broker for emergency fan-out and crowd update publishing
	// (optional; publishing is skipped when unset)
	MQTTBroker   string
	MQTTClientID string

	// Local mirror database file (optional fallback backend)
	MirrorDBPath string

	// Seed marker file used when Redis is not configured
	SeedMarkerPath string

	// Assistant (external generative-text service; template fallback
	// is used when unset or unreachable)
	AssistantAPIURL string
	AssistantAPIKey string
	AssistantModel  string

	// Simulation
	SimulationEnabled      bool
	CrowdRefreshInterval   time.Duration
	AlertInterval          time.Duration
	AttendanceInterval     time.Duration
	LostFoundChurnInterval time.Duration

	// JWT Authentication
	JWTSecretKey string

	// Admin
	AdminUsername        string
	DefaultAdminPassword string
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	// Get environment type (default to LOCAL if not set)
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	// Set prefix based on environment type
	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	fmt.Printf("Loading configuration for environment: %s\n", envType)

	return &Config{
		// Environment type
		EnvType: envType,

		// Server config
		ServerPort: getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "8080")),

		// Redis config
		RedisHost: getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "")),
		RedisPort: getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// MQTT config
		MQTTBroker:   getEnv(prefix+"MQTT_BROKER", getEnv("MQTT_BROKER", "")),
		MQTTClientID: getEnv("MQTT_CLIENT_ID", "smartkumbh-server"),

		// Local mirror / seed marker
		MirrorDBPath:   getEnv("MIRROR_DB_PATH", ""),
		SeedMarkerPath: getEnv("SEED_MARKER_PATH", "data/seed_completed"),

		// Assistant config
		AssistantAPIURL: getEnv("ASSISTANT_API_URL", ""),
		AssistantAPIKey: getEnv("ASSISTANT_API_KEY", ""),
		AssistantModel:  getEnv("ASSISTANT_MODEL", "gemini-1.5-flash"),

		// Simulation config
		SimulationEnabled:      getEnvAsBool("SIMULATION_ENABLED", true),
		CrowdRefreshInterval:   getEnvAsDuration("CROWD_REFRESH_INTERVAL", 30*time.Second),
		AlertInterval:          getEnvAsDuration("ALERT_INTERVAL", 5*time.Minute),
		AttendanceInterval:     getEnvAsDuration("ATTENDANCE_INTERVAL", 2*time.Minute),
		LostFoundChurnInterval: getEnvAsDuration("LOST_FOUND_CHURN_INTERVAL", 10*time.Minute),

		// JWT Config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "smartkumbh-secret-key-change-in-production"),

		// Admin Config
		AdminUsername:        getEnv("ADMIN_USERNAME", "admin"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// RedisEnabled reports whether a Redis host was configured
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as duration with default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
