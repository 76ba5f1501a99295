// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/vie/internal/input"
	"github.com/bethropolis/vie/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config  `toml:"logger"`
	Editor EditorConfig   `toml:"editor"`
	Keys   input.Bindings `toml:"keys"`

	// Warnings collected while loading, logged once the logger is up.
	Warnings []string `toml:"-"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	SystemClipboard bool   `toml:"system_clipboard"`
	ThemeFile       string `toml:"theme_file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: DefaultLogFileName,
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			SystemClipboard: SystemClipboard,
		},
		Keys: input.DefaultBindings(),
	}
}

// DefaultConfigPath is $XDG_CONFIG_HOME/vie/config.toml, or "" when no
// config directory can be determined.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	metadata, err := toml.DecodeFile(filePath, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("config file '%s': unrecognized keys: %v", filePath, undecoded))
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid tab_width %d, using %d", c.Editor.TabWidth, defaults.Editor.TabWidth))
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid log_level %q, using %q", c.Logger.LogLevel, defaults.Logger.LogLevel))
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Logger.LogFilePath == "" {
		c.Logger.LogFilePath = defaults.Logger.LogFilePath
	}
	c.Keys = defaults.Keys.Merge(c.Keys)
}

// Load builds the configuration: defaults, then the TOML file, then flags
// that were set, then validation. An empty configFilePath means the default
// location. On a parse error the returned config is still usable (defaults
// plus flags) and the error is returned for reporting.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	if flags != nil && configFilePath == "" {
		configFilePath = flags.ConfigPath()
	}
	if configFilePath == "" {
		configFilePath = DefaultConfigPath()
	}

	var loadErr error
	if configFilePath != "" {
		if err := loadFromFile(configFilePath, cfg); err != nil {
			loadErr = err
			warnings := cfg.Warnings
			cfg = NewDefaultConfig()
			cfg.Warnings = warnings
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, loadErr
}

// LogWarnings reports what Load collected. Call after logger.Init.
func (c *Config) LogWarnings() {
	for _, w := range c.Warnings {
		logger.Warnf("Config: %s", w)
	}
}
