package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken      string
	DiscordGuildID    string
	AnnounceChannelID string // channel for event and settlement announcements, optional

	// Storage configuration
	StorageBackend string
	DatabaseURL    string
	DatabaseName   string

	// Ledger configuration
	AuthorityID string // identity allowed to create and settle events

	// Fan-out and caching, both optional
	NATSServers   string
	RedisAddr     string
	EventCacheTTL time.Duration

	// Observability
	MetricsPort string
	LogLevel    string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.RWMutex
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		cfg, err := load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
		mu.Lock()
		if instance == nil {
			instance = cfg
		}
		mu.Unlock()
	})
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

// Load reads the configuration from the environment without caching it
func Load() (*Config, error) {
	return load()
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DiscordToken:      os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID:    os.Getenv("DISCORD_GUILD_ID"),
		AnnounceChannelID: os.Getenv("ANNOUNCE_CHANNEL_ID"),

		StorageBackend: strings.ToLower(os.Getenv("STORAGE_BACKEND")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseName:   os.Getenv("DATABASE_NAME"),

		AuthorityID: strings.TrimSpace(os.Getenv("AUTHORITY_ID")),

		NATSServers:   os.Getenv("NATS_SERVERS"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		EventCacheTTL: 5 * time.Minute,

		MetricsPort: os.Getenv("METRICS_PORT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if ttl := os.Getenv("EVENT_CACHE_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid EVENT_CACHE_TTL %q: %w", ttl, err)
		}
		config.EventCacheTTL = parsed
	}

	// Set defaults
	if config.StorageBackend == "" {
		config.StorageBackend = StoragePostgres
	}
	if config.MetricsPort == "" {
		config.MetricsPort = "9090"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Environment == "" {
		config.Environment = "development"
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	if c.Environment == "test" {
		return nil
	}

	if c.AuthorityID == "" {
		return fmt.Errorf("AUTHORITY_ID is required")
	}
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.StorageBackend == StoragePostgres && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SetTestConfig replaces the global configuration. Tests only.
func SetTestConfig(cfg *Config) {
	once.Do(func() {})
	mu.Lock()
	instance = cfg
	mu.Unlock()
}

// ResetConfig clears the global configuration so the next Get reloads it. Tests only.
func ResetConfig() {
	mu.Lock()
	instance = nil
	once = sync.Once{}
	mu.Unlock()
}

// NewTestConfig returns a configuration suitable for tests
func NewTestConfig() *Config {
	return &Config{
		StorageBackend: StorageMemory,
		AuthorityID:    "100000000000000001",
		EventCacheTTL:  time.Minute,
		MetricsPort:    "0",
		LogLevel:       "debug",
		Environment:    "test",
	}
}
