package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Admin        AdminConfig
	Contact      ContactConfig
	Notification NotificationConfig
	Content      ContentConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	// CORSAllowedOrigins lists origins allowed to call the API from a browser.
	CORSAllowedOrigins []string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level  string
	Format string
	Output string
}

// AdminConfig defines credentials for the contact inbox.
type AdminConfig struct {
	Username        string
	PasswordHash    string
	JWTSecret       string
	TokenTTLMinutes int
}

// ContactConfig covers both the outbound form client and the inbound endpoint.
type ContactConfig struct {
	EndpointURL           string
	SubmitTimeoutSeconds  int
	NotificationMillis    int
	RateLimitPerWindow    int
	RateLimitWindowSecond int
	IPHashSalt            string
}

// NotificationConfig holds owner notification targets.
type NotificationConfig struct {
	EmailFrom  string
	EmailTo    string
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	WebhookURL string
	QueueSize  int
}

// ContentConfig points at an optional YAML file replacing the embedded site content.
type ContentConfig struct {
	Path string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	maxConns := int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10))
	minConns := int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2))
	runMigrations := getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true)
	connMaxIdle := int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30))
	connMaxLife := int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300))

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "portfolio-site"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			CORSAllowedOrigins:    getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       maxConns,
			MinConns:       minConns,
			RunMigrations:  runMigrations,
			ConnMaxIdleSec: connMaxIdle,
			ConnMaxLifeSec: connMaxLife,
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
		Admin: AdminConfig{
			Username:        getEnv("ADMIN_USERNAME", "admin"),
			PasswordHash:    os.Getenv("ADMIN_PASSWORD_HASH"),
			JWTSecret:       getEnv("ADMIN_JWT_SECRET", "dev-secret"),
			TokenTTLMinutes: getEnvAsInt("ADMIN_TOKEN_TTL_MINUTES", 60),
		},
		Contact: ContactConfig{
			EndpointURL:           getEnv("CONTACT_ENDPOINT_URL", "http://127.0.0.1:8080/api/contact"),
			SubmitTimeoutSeconds:  getEnvAsInt("CONTACT_SUBMIT_TIMEOUT_SECONDS", 0),
			NotificationMillis:    getEnvAsInt("CONTACT_NOTIFICATION_MS", 3000),
			RateLimitPerWindow:    getEnvAsInt("CONTACT_RATE_LIMIT", 5),
			RateLimitWindowSecond: getEnvAsInt("CONTACT_RATE_LIMIT_WINDOW_SECONDS", 600),
			IPHashSalt:            getEnv("CONTACT_IP_HASH_SALT", "portfolio"),
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", "noreply@example.com"),
			EmailTo:    os.Getenv("NOTIFY_EMAIL_TO"),
			SMTPHost:   os.Getenv("SMTP_HOST"),
			SMTPPort:   getEnv("SMTP_PORT", "587"),
			SMTPUser:   os.Getenv("SMTP_USER"),
			SMTPPass:   os.Getenv("SMTP_PASS"),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
			QueueSize:  getEnvAsInt("NOTIFY_QUEUE_SIZE", 64),
		},
		Content: ContentConfig{
			Path: os.Getenv("CONTENT_PATH"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// SubmitTimeout is zero when the transport default applies.
func (c ContactConfig) SubmitTimeout() time.Duration {
	if c.SubmitTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.SubmitTimeoutSeconds) * time.Second
}

// NotificationDuration returns how long a submission result stays visible.
func (c ContactConfig) NotificationDuration() time.Duration {
	if c.NotificationMillis <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.NotificationMillis) * time.Millisecond
}

// RateLimitWindow returns the fixed window used for intake throttling.
func (c ContactConfig) RateLimitWindow() time.Duration {
	if c.RateLimitWindowSecond <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.RateLimitWindowSecond) * time.Second
}

// TokenTTL returns the admin token lifetime.
func (a AdminConfig) TokenTTL() time.Duration {
	if a.TokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
