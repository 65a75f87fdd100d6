package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	SRS      SRSConfig      `yaml:"srs"`
	AI       AIConfig       `yaml:"ai"`
	CORS     CORSConfig     `yaml:"cors"`

	// Source is the YAML path the values were read from, or SourceEnv.
	Source string `yaml:"-"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"  validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitMax    int           `yaml:"rate_limit_max"    env:"SERVER_RATE_LIMIT_MAX"    env-default:"300" validate:"gt=0"`
	RateLimitWindow time.Duration `yaml:"rate_limit_window" env:"SERVER_RATE_LIMIT_WINDOW" env-default:"1m"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25" validate:"gt=0"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"  validate:"gte=0,ltefield=MaxConns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	HealthCheck     time.Duration `yaml:"health_check"       env:"DATABASE_HEALTH_CHECK"       env-default:"1m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
}

// AuthConfig holds settings for validating bearer tokens issued by the
// external auth provider.
type AuthConfig struct {
	JWTSecret   string `yaml:"jwt_secret"   env:"AUTH_JWT_SECRET"   env-required:"true"`
	JWTIssuer   string `yaml:"jwt_issuer"   env:"AUTH_JWT_ISSUER"`
	JWTAudience string `yaml:"jwt_audience" env:"AUTH_JWT_AUDIENCE" env-default:"authenticated"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" validate:"oneof=json text"`
}

// SRSConfig holds spaced-repetition and review-session parameters.
type SRSConfig struct {
	DefaultEaseFactor    float64 `yaml:"default_ease_factor"    env:"SRS_DEFAULT_EASE"            env-default:"2.5"  validate:"gtefield=MinEaseFactor"`
	MinEaseFactor        float64 `yaml:"min_ease_factor"        env:"SRS_MIN_EASE"                env-default:"1.3"  validate:"gte=1.3"`
	AgainEasePenalty     float64 `yaml:"again_ease_penalty"     env:"SRS_AGAIN_EASE_PENALTY"      env-default:"0.20" validate:"gte=0"`
	HardEasePenalty      float64 `yaml:"hard_ease_penalty"      env:"SRS_HARD_EASE_PENALTY"       env-default:"0.15" validate:"gte=0"`
	EasyEaseBonus        float64 `yaml:"easy_ease_bonus"        env:"SRS_EASY_EASE_BONUS"         env-default:"0.15" validate:"gte=0"`
	AgainIntervalDays    int     `yaml:"again_interval_days"    env:"SRS_AGAIN_INTERVAL"          env-default:"1"    validate:"gte=0"`
	FirstIntervalDays    int     `yaml:"first_interval_days"    env:"SRS_FIRST_INTERVAL"          env-default:"1"    validate:"gte=1"`
	SecondIntervalDays   int     `yaml:"second_interval_days"   env:"SRS_SECOND_INTERVAL"         env-default:"6"    validate:"gtefield=FirstIntervalDays"`
	HardIntervalModifier float64 `yaml:"hard_interval_modifier" env:"SRS_HARD_INTERVAL_MODIFIER"  env-default:"0.8"  validate:"gt=0,lt=1"`
	EasyBonus            float64 `yaml:"easy_bonus"             env:"SRS_EASY_BONUS"              env-default:"1.3"  validate:"gte=1"`
	MaxIntervalDays      int     `yaml:"max_interval_days"      env:"SRS_MAX_INTERVAL"            env-default:"365"  validate:"gtefield=SecondIntervalDays"`
	MatureIntervalDays   int     `yaml:"mature_interval_days"   env:"SRS_MATURE_INTERVAL"         env-default:"21"   validate:"gt=0"`

	NewCardsPerSession   int           `yaml:"new_cards_per_session"   env:"SRS_NEW_CARDS_PER_SESSION"   env-default:"20"  validate:"gte=0"`
	MaxReviewsPerSession int           `yaml:"max_reviews_per_session" env:"SRS_MAX_REVIEWS_PER_SESSION" env-default:"200" validate:"gt=0"`
	StaleSessionAfter    time.Duration `yaml:"stale_session_after"     env:"SRS_STALE_SESSION_AFTER"     env-default:"24h"`
}

// AIConfig holds settings for the generative-AI provider and the
// bookkeeping (cache, rate limit) that gates it.
type AIConfig struct {
	Enabled        bool          `yaml:"enabled"         env:"AI_ENABLED"         env-default:"true"`
	APIKey         string        `yaml:"api_key"         env:"AI_API_KEY"`
	BaseURL        string        `yaml:"base_url"        env:"AI_BASE_URL"`
	Model          string        `yaml:"model"           env:"AI_MODEL"           env-default:"claude-sonnet-4-5"`
	MaxTokens      int64         `yaml:"max_tokens"      env:"AI_MAX_TOKENS"      env-default:"2048" validate:"gt=0"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"AI_REQUEST_TIMEOUT" env-default:"60s"`
	MaxRetries     int           `yaml:"max_retries"     env:"AI_MAX_RETRIES"     env-default:"2"    validate:"gte=0,lte=10"`

	CacheBackend      string        `yaml:"cache_backend"       env:"AI_CACHE_BACKEND"       env-default:"postgres" validate:"oneof=postgres memory"`
	CacheTTLDays      int           `yaml:"cache_ttl_days"      env:"AI_CACHE_TTL_DAYS"      env-default:"7"        validate:"gt=0"`
	CacheMemorySize   int           `yaml:"cache_memory_size"   env:"AI_CACHE_MEMORY_SIZE"   env-default:"1000"     validate:"gt=0"`
	CacheWriteTimeout time.Duration `yaml:"cache_write_timeout" env:"AI_CACHE_WRITE_TIMEOUT" env-default:"5s"`

	RateLimitMax             int           `yaml:"rate_limit_max"              env:"AI_RATE_LIMIT_MAX"              env-default:"30" validate:"gt=0"`
	RateLimitWindow          time.Duration `yaml:"rate_limit_window"           env:"AI_RATE_LIMIT_WINDOW"           env-default:"1h"`
	RateLimitCleanupInterval time.Duration `yaml:"rate_limit_cleanup_interval" env:"AI_RATE_LIMIT_CLEANUP_INTERVAL" env-default:"10m"`
}

// CacheTTL returns the configured cache lifetime as a duration.
func (c AIConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLDays) * 24 * time.Hour
}
