package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Dispatch.validate(); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}

	return nil
}

func (d *DispatchConfig) validate() error {
	if d.Hour < 0 || d.Hour > 23 {
		return fmt.Errorf("hour must be in 0..23 (got %d)", d.Hour)
	}
	if d.Minute < 0 || d.Minute > 59 {
		return fmt.Errorf("minute must be in 0..59 (got %d)", d.Minute)
	}
	if d.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", d.Workers)
	}
	if d.SendTimeout <= 0 {
		return fmt.Errorf("send_timeout must be > 0 (got %v)", d.SendTimeout)
	}
	if _, err := time.LoadLocation(d.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", d.Timezone, err)
	}
	return nil
}
