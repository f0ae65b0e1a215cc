package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLimits(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateLimits() error {
	if c.Limits.MaxInputBytes <= 0 {
		return errors.New("limits.max_input_bytes must be positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !strings.HasPrefix(c.Output.DefaultExtension, ".") {
		return fmt.Errorf("output.default_extension must begin with '.', got %q", c.Output.DefaultExtension)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
