// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/bethropolis/vie/internal/logger"
	"github.com/bethropolis/vie/internal/utils"
)

// Flags holds values parsed from command-line flags.
// Pointers plus Visit distinguish unset flags from zero values.
type Flags struct {
	set *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	TabWidth        *int
	ThemeFile       *string
	SystemClipboard *bool
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	DebugLog        *bool
}

// NewFlags defines the command-line flags on a new flag set named name.
func NewFlags(name string, errorHandling flag.ErrorHandling) *Flags {
	f := &Flags{set: flag.NewFlagSet(name, errorHandling)}
	f.defineFlags()
	return f
}

func (f *Flags) defineFlags() {
	fs := f.set
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default $XDG_CONFIG_HOME/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.TabWidth = fs.Int("tabwidth", 0, "Display width of a tab - Overrides config file")
	f.ThemeFile = fs.String("theme", "", "Path to a TOML theme file - Overrides config file")
	f.SystemClipboard = fs.Bool("system-clipboard", false, "Mirror the line register to the system clipboard")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Trace the logger's own filtering decisions")
}

// Parse parses args (without the program name) and returns the remaining
// non-flag arguments, e.g. the file path.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f.set.Args(), nil
}

// SetOutput redirects usage and error messages.
func (f *Flags) SetOutput(w io.Writer) {
	f.set.SetOutput(w)
}

// ConfigPath is the -config value, "" if unset.
func (f *Flags) ConfigPath() string {
	if f.ConfigFilePath == nil {
		return ""
	}
	return *f.ConfigFilePath
}

func (f *Flags) ShowVersion() bool {
	return f.Version != nil && *f.Version
}

func (f *Flags) FilterDebug() bool {
	return f.DebugLog != nil && *f.DebugLog
}

// ApplyOverrides updates cfg with the flags that were actually set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.set.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "theme":
			cfg.Editor.ThemeFile = *f.ThemeFile
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = utils.SplitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = utils.SplitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = utils.SplitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = utils.SplitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = utils.SplitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = utils.SplitCommaList(*f.DisableFiles)
		}
	})
}
