package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"algaid/internal/catalog"
	"algaid/internal/catalogstore"
	"algaid/internal/config"
	"algaid/internal/logging"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

// ensureLogger writes to today's log file; --verbose adds stderr at debug
// level. Old log files are pruned the first time the logger is built.
func (c *commandContext) ensureLogger(cfg *config.Config) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		logCfg := *cfg
		var extra []string
		if c.verbose() {
			logCfg.Logging.Level = "debug"
			extra = append(extra, "stderr")
		}
		logger, err := logging.NewFromConfig(&logCfg, extra...)
		if err != nil {
			c.loggerErr = fmt.Errorf("setup logging: %w", err)
			return
		}
		logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays, cfg.Paths.LogDir, logging.LogFilePattern)
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// activeCatalog loads the catalog selected by catalog.source and describes
// where it came from.
func (c *commandContext) activeCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*catalog.Catalog, string, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		cat, err := catalog.Load(cfg.Catalog.File)
		if err != nil {
			return nil, "", fmt.Errorf("load catalog file: %w", err)
		}
		return cat, cfg.Catalog.File, nil
	case config.CatalogSourceDatabase:
		store, err := catalogstore.Open(ctx, cfg.Catalog.Database, logger)
		if err != nil {
			return nil, "", err
		}
		defer store.Close()
		cat, err := store.Load(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("load catalog database %s: %w", cfg.Catalog.Database, err)
		}
		return cat, cfg.Catalog.Database, nil
	default:
		return catalog.Default(), config.CatalogSourceBuiltin, nil
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "sí"
	}
	return "no"
}
