package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database        DatabaseConfig
	Google          GoogleConfig
	AI              AIConfig
	Mail            MailConfig
	Redis           RedisConfig
	Scheduling      SchedulingConfig
	Dispatch        DispatchConfig
	ResponseSync    ResponseSyncConfig
	AttachmentCache AttachmentCacheConfig
	Server          ServerConfig
	LogLevel        string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// GoogleConfig holds the OAuth client used for Gmail and Drive access on behalf of accounts
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

// AIConfig holds content generation and classification provider keys.
// Both keys are optional; without any key the deterministic fallbacks are used.
type AIConfig struct {
	GoogleAIAPIKey string
	GeminiModel    string
	OpenAIAPIKey   string
	OpenAIModel    string
}

// MailConfig holds the Resend transport used by accounts that are not on Gmail
type MailConfig struct {
	ResendAPIKey string
}

// RedisConfig holds Redis settings for the blocklist cache and the classification queue
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port for clients that take a single address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SchedulingConfig holds the tick intervals of the periodic jobs
type SchedulingConfig struct {
	WarmupInterval       time.Duration
	DispatchInterval     time.Duration
	ResponseSyncInterval time.Duration
	CacheCleanupInterval time.Duration
	TimeZone             *time.Location
}

// DispatchConfig holds per-tick dispatch limits
type DispatchConfig struct {
	BatchCap          int
	MatcherPageSize   int
	BlocklistCacheTTL time.Duration
}

// ResponseSyncConfig holds response polling settings
type ResponseSyncConfig struct {
	ThreadsPerAccount     int
	ClassifyViaQueue      bool
	ClassifierConcurrency int
}

// AttachmentCacheConfig holds attachment cache settings
type AttachmentCacheConfig struct {
	Dir   string
	TTL   time.Duration
	Index string // "scan" or "bolt"
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Google.ClientID, err = requireEnv("GOOGLE_CLIENT_ID"); err != nil {
		return nil, err
	}
	if cfg.Google.ClientSecret, err = requireEnv("GOOGLE_CLIENT_SECRET"); err != nil {
		return nil, err
	}

	cfg.AI.GoogleAIAPIKey = os.Getenv("GOOGLE_AI_API_KEY")
	cfg.AI.GeminiModel = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	cfg.AI.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	cfg.Mail.ResendAPIKey = os.Getenv("RESEND_API_KEY")

	if cfg.Redis, err = loadRedis(); err != nil {
		return nil, err
	}
	if cfg.Scheduling, err = loadScheduling(); err != nil {
		return nil, err
	}
	if cfg.Dispatch, err = loadDispatch(); err != nil {
		return nil, err
	}
	if cfg.ResponseSync, err = loadResponseSync(); err != nil {
		return nil, err
	}
	if cfg.AttachmentCache, err = loadAttachmentCache(); err != nil {
		return nil, err
	}
	if cfg.ResponseSync.ClassifyViaQueue && !cfg.Redis.Enabled {
		return nil, errors.New("CLASSIFY_VIA_QUEUE requires REDIS_ENABLED")
	}

	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")

	serverPort := getEnvWithDefault("SERVER_PORT", "8080")
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

func loadRedis() (RedisConfig, error) {
	var (
		rc  RedisConfig
		err error
	)
	if rc.Enabled, err = parseBool("REDIS_ENABLED", "false"); err != nil {
		return rc, err
	}
	rc.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if rc.Port, err = parseInt("REDIS_PORT", "6379"); err != nil {
		return rc, err
	}
	rc.Password = os.Getenv("REDIS_PASSWORD")
	if rc.DB, err = parseInt("REDIS_DB", "0"); err != nil {
		return rc, err
	}
	return rc, nil
}

func loadScheduling() (SchedulingConfig, error) {
	var (
		sc  SchedulingConfig
		err error
	)
	if sc.WarmupInterval, err = parseDuration("WARMUP_INTERVAL", "24h"); err != nil {
		return sc, err
	}
	if sc.DispatchInterval, err = parseDuration("DISPATCH_INTERVAL", "1m"); err != nil {
		return sc, err
	}
	if sc.ResponseSyncInterval, err = parseDuration("RESPONSE_SYNC_INTERVAL", "20m"); err != nil {
		return sc, err
	}
	if sc.CacheCleanupInterval, err = parseDuration("ATTACHMENT_CACHE_CLEANUP_INTERVAL", "1h"); err != nil {
		return sc, err
	}
	tz := getEnvWithDefault("SCHEDULE_TIMEZONE", "UTC")
	if sc.TimeZone, err = time.LoadLocation(tz); err != nil {
		return sc, fmt.Errorf("failed to parse SCHEDULE_TIMEZONE: %w", err)
	}
	return sc, nil
}

func loadDispatch() (DispatchConfig, error) {
	var (
		dc  DispatchConfig
		err error
	)
	if dc.BatchCap, err = parseInt("DISPATCH_BATCH_CAP", "5"); err != nil {
		return dc, err
	}
	if dc.MatcherPageSize, err = parseInt("MATCHER_PAGE_SIZE", "200"); err != nil {
		return dc, err
	}
	if dc.BlocklistCacheTTL, err = parseDuration("BLOCKLIST_CACHE_TTL", "10m"); err != nil {
		return dc, err
	}
	return dc, nil
}

func loadResponseSync() (ResponseSyncConfig, error) {
	var (
		rc  ResponseSyncConfig
		err error
	)
	if rc.ThreadsPerAccount, err = parseInt("RESPONSE_SYNC_THREADS_PER_ACCOUNT", "50"); err != nil {
		return rc, err
	}
	if rc.ClassifyViaQueue, err = parseBool("CLASSIFY_VIA_QUEUE", "false"); err != nil {
		return rc, err
	}
	if rc.ClassifierConcurrency, err = parseInt("CLASSIFIER_CONCURRENCY", "4"); err != nil {
		return rc, err
	}
	return rc, nil
}

func loadAttachmentCache() (AttachmentCacheConfig, error) {
	var (
		ac  AttachmentCacheConfig
		err error
	)
	ac.Dir = getEnvWithDefault("ATTACHMENT_CACHE_DIR", "./data/attachments")
	if ac.TTL, err = parseDuration("ATTACHMENT_CACHE_TTL", "24h"); err != nil {
		return ac, err
	}
	ac.Index = getEnvWithDefault("ATTACHMENT_CACHE_INDEX", "scan")
	if ac.Index != "scan" && ac.Index != "bolt" {
		return ac, fmt.Errorf("ATTACHMENT_CACHE_INDEX must be scan or bolt, got %q", ac.Index)
	}
	return ac, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseInt(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func parseBool(key, defaultValue string) (bool, error) {
	v, err := strconv.ParseBool(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	v, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return v, nil
}
