package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Log    LogConfig
	Source SourceConfig
	Export ExportConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SourceConfig holds capture file reading settings.
type SourceConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the file size limit in bytes.
func (s *SourceConfig) MaxBytes() int64 {
	return s.MaxFileSizeMB * 1024 * 1024
}

// ExportConfig holds batch export settings.
type ExportConfig struct {
	Format      string `mapstructure:"format"`
	Dir         string `mapstructure:"dir"`
	Concurrency int    `mapstructure:"concurrency"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"log-format":  "log.format",
	"max-size-mb": "source.max_file_size_mb",
	"export":      "export.format",
	"out":         "export.dir",
	"concurrency": "export.concurrency",
}

// Load reads configuration from, in increasing precedence: defaults, the
// YAML file at path (if non-empty), TRAMEVIEW_ environment variables, and
// any flags in fs that were set explicitly. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRAMEVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Source defaults
	v.SetDefault("source.max_file_size_mb", 50)

	// Export defaults (empty format = interactive viewer)
	v.SetDefault("export.format", "")
	v.SetDefault("export.dir", ".")
	v.SetDefault("export.concurrency", 4)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"log.level":               "TRAMEVIEW_LOG_LEVEL",
		"log.format":              "TRAMEVIEW_LOG_FORMAT",
		"source.max_file_size_mb": "TRAMEVIEW_SOURCE_MAX_FILE_SIZE_MB",
		"export.format":           "TRAMEVIEW_EXPORT_FORMAT",
		"export.dir":              "TRAMEVIEW_EXPORT_DIR",
		"export.concurrency":      "TRAMEVIEW_EXPORT_CONCURRENCY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Source: SourceConfig{
			MaxFileSizeMB: v.GetInt64("source.max_file_size_mb"),
		},
		Export: ExportConfig{
			Format:      strings.ToLower(strings.TrimSpace(v.GetString("export.format"))),
			Dir:         v.GetString("export.dir"),
			Concurrency: v.GetInt("export.concurrency"),
		},
	}
	if cfg.Export.Concurrency < 1 {
		cfg.Export.Concurrency = 1
	}

	return cfg, nil
}
