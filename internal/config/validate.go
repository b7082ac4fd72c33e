package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case CatalogSourceBuiltin:
	case CatalogSourceFile:
		if strings.TrimSpace(c.Catalog.File) == "" {
			return errors.New("catalog.file must be set when catalog.source is \"file\" (or export ALGAID_CATALOG)")
		}
	case CatalogSourceDatabase:
		if strings.TrimSpace(c.Catalog.Database) == "" {
			return errors.New("catalog.database must be set when catalog.source is \"database\"")
		}
	default:
		return fmt.Errorf("catalog.source: unsupported value %q (want builtin, file or database)", c.Catalog.Source)
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.ThresholdPercent < 1 || c.Matching.ThresholdPercent > 100 {
		return fmt.Errorf("matching.threshold_percent must be between 1 and 100, got %d", c.Matching.ThresholdPercent)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
