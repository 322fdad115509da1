package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Stats backends understood by the store factory
const (
	BackendFile          = "file"
	BackendMemory        = "memory"
	BackendSQLite        = "sqlite"
	BackendPostgres      = "postgres"
	BackendRedis         = "redis"
	BackendElasticsearch = "elasticsearch"
)

// DefaultStatsFile is where the win/loss record lives when nothing else is configured
const DefaultStatsFile = "blackjack_stats.json"

// Config holds all configuration for the application
type Config struct {
	// Discord configuration, only needed by the bot
	Token   string
	AppID   string
	GuildID string

	// Resource paths
	DataDir    string
	StatsFile  string
	SQLitePath string
	LogFile    string

	// Stats persistence
	StatsBackend string
	Postgres     PostgresConfig
	RedisURL     string
	RedisKey     string
	Elastic      ElasticConfig

	// Environment
	Environment string // "development" or "production"
	LogLevel    string
}

// PostgresConfig holds the connection settings for the postgres stats store
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ConnectionString renders the settings as a lib/pq key/value DSN
func (p PostgresConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

// ElasticConfig holds the connection settings for the elasticsearch stats store
type ElasticConfig struct {
	URL      string
	Username string
	Password string
	Index    string
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	dataDir := getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data"))

	cfg := &Config{
		Token:        os.Getenv("DISCORD_TOKEN"),
		AppID:        os.Getenv("APP_ID"),
		GuildID:      os.Getenv("GUILD_ID"),
		Environment:  getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "INFO"),
		DataDir:      dataDir,
		StatsBackend: getEnvWithDefault("STATS_BACKEND", BackendFile),
		StatsFile:    getEnvWithDefault("STATS_FILE", DefaultStatsFile),
		SQLitePath:   getEnvWithDefault("SQLITE_PATH", filepath.Join(dataDir, "tucojack.db")),
		LogFile:      getEnvWithDefault("LOG_FILE", filepath.Join(dataDir, "tucojack.log")),
		Postgres: PostgresConfig{
			Host:     getEnvWithDefault("DB_HOST", "localhost"),
			Port:     getEnvWithDefault("DB_PORT", "5432"),
			User:     getEnvWithDefault("DB_USER", "tucojack"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   getEnvWithDefault("DB_NAME", "tucojack"),
			SSLMode:  getEnvWithDefault("DB_SSLMODE", "disable"),
		},
		RedisURL: getEnvWithDefault("REDIS_URL", "redis://localhost:6379/0"),
		RedisKey: getEnvWithDefault("REDIS_KEY", "tucojack:stats"),
		Elastic: ElasticConfig{
			URL:      getEnvWithDefault("ES_URL", "http://localhost:9200"),
			Username: os.Getenv("ES_USERNAME"),
			Password: os.Getenv("ES_PASSWORD"),
			Index:    getEnvWithDefault("ES_INDEX", "tucojack_stats"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// validate checks the settings every entrypoint depends on
func (c *Config) validate() error {
	switch c.StatsBackend {
	case BackendFile, BackendMemory, BackendSQLite, BackendPostgres, BackendRedis, BackendElasticsearch:
	default:
		return fmt.Errorf("STATS_BACKEND %q is not supported", c.StatsBackend)
	}
	if c.StatsFile == "" {
		return fmt.Errorf("STATS_FILE must not be empty")
	}
	return nil
}

// ValidateDiscord checks the settings only the Discord bot needs
func (c *Config) ValidateDiscord() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.AppID == "" {
		return fmt.Errorf("APP_ID is required")
	}
	if c.GuildID == "" {
		return fmt.Errorf("GUILD_ID is required")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
