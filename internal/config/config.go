package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the revmon configuration.
type Config struct {
	Mode         string  `json:"mode"`
	AbsThreshold int     `json:"absThreshold"`
	RelThreshold float64 `json:"relThreshold"`
	Format       string  `json:"format"`
	MaxRows      int     `json:"maxRows"`
	// SentimentLabels overrides the raw-label → canonical mapping table.
	// Empty means the built-in table.
	SentimentLabels map[string]string `json:"sentimentLabels,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Mode:         "threshold",
		AbsThreshold: 3,
		RelThreshold: 0.20,
		Format:       "markdown",
		MaxRows:      300,
	}
}

// ConfigDir returns the platform-appropriate config directory for revmon.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "revmon"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "revmon"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "revmon"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "revmon"), nil
	default:
		return filepath.Join(home, ".config", "revmon"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only changed flags
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Mode != "" {
		dst.Mode = src.Mode
	}
	if src.AbsThreshold > 0 {
		dst.AbsThreshold = src.AbsThreshold
	}
	if src.RelThreshold > 0 {
		dst.RelThreshold = src.RelThreshold
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.MaxRows > 0 {
		dst.MaxRows = src.MaxRows
	}
	if len(src.SentimentLabels) > 0 {
		dst.SentimentLabels = src.SentimentLabels
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("REVMON_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("REVMON_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("REVMON_ABS_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AbsThreshold = n
		}
	}
	if v := os.Getenv("REVMON_REL_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RelThreshold = f
		}
	}
	if v := os.Getenv("REVMON_MAX_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRows = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["mode"]; ok && v != "" {
		cfg.Mode = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["absThreshold"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AbsThreshold = n
		}
	}
	if v, ok := overrides["relThreshold"]; ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RelThreshold = f
		}
	}
	if v, ok := overrides["maxRows"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRows = n
		}
	}
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown or the value doesn't parse.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "mode":
		cfg.Mode = value
	case "format":
		cfg.Format = value
	case "absThreshold":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("absThreshold must be an integer: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("absThreshold must be non-negative")
		}
		cfg.AbsThreshold = n
	case "relThreshold":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("relThreshold must be a number: %w", err)
		}
		if f < 0 {
			return fmt.Errorf("relThreshold must be non-negative")
		}
		cfg.RelThreshold = f
	case "maxRows":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxRows must be an integer: %w", err)
		}
		cfg.MaxRows = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
