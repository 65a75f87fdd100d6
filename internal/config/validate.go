package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := structValidator.Struct(c); err != nil {
		return describe(err)
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("server: rate_limit_window must be > 0 (got %v)", c.Server.RateLimitWindow)
	}

	if c.SRS.StaleSessionAfter <= 0 {
		return fmt.Errorf("srs: stale_session_after must be > 0 (got %v)", c.SRS.StaleSessionAfter)
	}

	return nil
}

func (a *AIConfig) validate() error {
	if a.Enabled && a.APIKey == "" {
		return fmt.Errorf("api_key is required when ai is enabled")
	}
	if a.RateLimitWindow <= 0 {
		return fmt.Errorf("rate_limit_window must be > 0 (got %v)", a.RateLimitWindow)
	}
	if a.RateLimitCleanupInterval <= 0 {
		return fmt.Errorf("rate_limit_cleanup_interval must be > 0 (got %v)", a.RateLimitCleanupInterval)
	}
	if a.CacheWriteTimeout <= 0 {
		return fmt.Errorf("cache_write_timeout must be > 0 (got %v)", a.CacheWriteTimeout)
	}
	return nil
}

// describe turns the first validator failure into a readable message.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Errorf("%s: failed %q (%s), got %v", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("%s: failed %q, got %v", fe.Namespace(), fe.Tag(), fe.Value())
}
