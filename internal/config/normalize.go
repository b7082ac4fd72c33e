package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() error {
	var err error
	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))
	if c.Catalog.Source == "" {
		c.Catalog.Source = CatalogSourceBuiltin
	}

	c.Catalog.File = strings.TrimSpace(c.Catalog.File)
	if value, ok := os.LookupEnv("ALGAID_CATALOG"); ok && strings.TrimSpace(value) != "" {
		c.Catalog.File = strings.TrimSpace(value)
		if c.Catalog.Source == CatalogSourceBuiltin {
			c.Catalog.Source = CatalogSourceFile
		}
	}
	if c.Catalog.File, err = expandPath(c.Catalog.File); err != nil {
		return fmt.Errorf("catalog.file: %w", err)
	}

	c.Catalog.Database = strings.TrimSpace(c.Catalog.Database)
	if c.Catalog.Database == "" {
		c.Catalog.Database = filepath.Join(c.Paths.DataDir, defaultCatalogDBName)
	}
	if c.Catalog.Database, err = expandPath(c.Catalog.Database); err != nil {
		return fmt.Errorf("catalog.database: %w", err)
	}
	return nil
}

func (c *Config) normalizeMatching() {
	if c.Matching.ThresholdPercent == 0 {
		c.Matching.ThresholdPercent = defaultThresholdPercent
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
