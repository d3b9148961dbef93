package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Storage.validate(c); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Auth.Enabled && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be > 0 (got %v)", c.API.Timeout)
	}

	if c.RateLimit.LoginPerMinute < 0 {
		return fmt.Errorf("rate_limit.login_per_minute must be >= 0 (got %d)", c.RateLimit.LoginPerMinute)
	}

	return nil
}

func (s *StorageConfig) validate(c *Config) error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if !IsKnownDriver(s.Driver) {
		return fmt.Errorf("unknown driver %q (want one of %s)", s.Driver, strings.Join(drivers, ", "))
	}
	if s.Namespace == "" {
		return fmt.Errorf("namespace is required")
	}

	switch s.Driver {
	case DriverBolt, DriverSQLite:
		if s.Path == "" {
			return fmt.Errorf("path is required for driver %q", s.Driver)
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", s.Driver)
		}
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("mongo.uri is required for driver %q", s.Driver)
		}
	}
	return nil
}

// SplitList splits a comma-separated config value, dropping empty items.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
