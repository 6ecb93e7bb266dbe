package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LogConfig controls the zap logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// Config is the planner configuration.
type Config struct {
	// ExportPath is the JSON export the viewer reads and edit mode loads.
	ExportPath string `yaml:"export_path"`

	// DBPath is the SQLite history database. Empty means DefaultDBPath.
	DBPath string `yaml:"db_path"`

	// History mirrors every save into the SQLite database.
	History bool `yaml:"history"`

	// StrictTime rejects malformed times and re-prompts instead of
	// accepting whatever parses.
	StrictTime bool `yaml:"strict_time"`

	// MaxEvents caps how many events one timetable holds.
	MaxEvents int `yaml:"max_events"`

	// Accessible renders the entry forms as plain screen-reader prompts.
	Accessible bool `yaml:"accessible"`

	Log LogConfig `yaml:"log"`
}

const (
	defaultExportPath = "schedule.json"
	defaultMaxEvents  = 100
	defaultLogLevel   = "warn"
	defaultLogFormat  = "console"
)

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		ExportPath: defaultExportPath,
		History:    true,
		MaxEvents:  defaultMaxEvents,
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Normalize fills in zero values with defaults.
func (c *Config) Normalize() {
	if c.ExportPath == "" {
		c.ExportPath = defaultExportPath
	}
	if c.MaxEvents <= 0 {
		c.MaxEvents = defaultMaxEvents
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		c.Log.Format = defaultLogFormat
	}
}

// DefaultPath returns ~/.config/planr/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "planr", "config.yaml"), nil
}

// ErrDefaultsNotWritten is returned together with a usable config when the
// first-run defaults could not be written to disk.
var ErrDefaultsNotWritten = errors.New("default config not written")

// Load reads the YAML file at path, writing defaults there on first run, then
// applies .env and PLANR_* environment overrides. If the defaults cannot be
// written, Load still returns the config along with ErrDefaultsNotWritten.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	cfg := DefaultConfig()
	var saveErr error
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := Save(path, cfg); err != nil {
			saveErr = fmt.Errorf("%w: %v", ErrDefaultsNotWritten, err)
		}
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, saveErr
}

// Save writes cfg as YAML with 0600 permissions.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("PLANR_EXPORT_PATH"); ok {
		c.ExportPath = v
	}
	if v, ok := os.LookupEnv("PLANR_DB_PATH"); ok {
		c.DBPath = v
	}
	if v, ok := os.LookupEnv("PLANR_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("PLANR_LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	for name, dst := range map[string]*bool{
		"PLANR_HISTORY":     &c.History,
		"PLANR_STRICT_TIME": &c.StrictTime,
		"PLANR_ACCESSIBLE":  &c.Accessible,
	} {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	if v, ok := os.LookupEnv("PLANR_MAX_EVENTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PLANR_MAX_EVENTS: %w", err)
		}
		c.MaxEvents = n
	}
	return nil
}
