package config

import (
	"fmt"
	"log/slog"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be <= max_conns (got %d > %d)", c.Database.MinConns, c.Database.MaxConns)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if c.Session.MaxActive <= 0 {
		return fmt.Errorf("session.max_active must be > 0 (got %d)", c.Session.MaxActive)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be > 0 (got %s)", c.Session.TTL)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: requests_per_minute and burst must be > 0 when enabled")
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.MinEase <= 0 {
		return fmt.Errorf("min_ease must be > 0 (got %v)", s.MinEase)
	}
	if s.MaxEase < s.MinEase {
		return fmt.Errorf("max_ease must be >= min_ease (got %v < %v)", s.MaxEase, s.MinEase)
	}
	if s.InitialEase < s.MinEase || s.InitialEase > s.MaxEase {
		return fmt.Errorf("initial_ease must be within [%v, %v] (got %v)", s.MinEase, s.MaxEase, s.InitialEase)
	}
	if s.AgainPenalty < 0 {
		return fmt.Errorf("again_penalty must be >= 0 (got %v)", s.AgainPenalty)
	}
	if s.AgainInterval < 1 || s.FirstInterval < 1 || s.SecondInterval < 1 {
		return fmt.Errorf("intervals must be >= 1 day (got again=%d first=%d second=%d)",
			s.AgainInterval, s.FirstInterval, s.SecondInterval)
	}
	if s.HardMultiplier <= 0 || s.EasyMultiplier <= 0 {
		return fmt.Errorf("multipliers must be > 0 (got hard=%v easy=%v)", s.HardMultiplier, s.EasyMultiplier)
	}
	return nil
}
