package config

const (
	defaultConfigPath       = "~/.config/algaid/config.toml"
	defaultDataDir          = "~/.local/share/algaid"
	defaultLogDir           = "~/.local/share/algaid/logs"
	defaultCatalogDBName    = "catalog.db"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
	defaultThresholdPercent = 70
)

// Catalog sources.
const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceFile     = "file"
	CatalogSourceDatabase = "database"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Catalog: Catalog{
			Source: CatalogSourceBuiltin,
		},
		Matching: Matching{
			ThresholdPercent: defaultThresholdPercent,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
