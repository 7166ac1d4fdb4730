package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SpecialtyConfig describes one specialty on-call roster the CLI may attach.
type SpecialtyConfig struct {
	// ID is the short identifier used on the command line (e.g. "cathlab").
	ID string `yaml:"id" json:"id"`
	// Label is the shift type stamped on every record of the roster and the
	// heading used for its line in event descriptions.
	Label string `yaml:"label" json:"label"`
}

// Config is the top-level application configuration.
type Config struct {
	// ProdID is the PRODID header of generated calendars.
	ProdID string `yaml:"prodid" json:"prodid"`

	// UIDDomain is the constant domain tag suffixed to event UIDs.
	UIDDomain string `yaml:"uid_domain" json:"uid_domain"`

	// OutputDir is where generated .ics files are written.
	OutputDir string `yaml:"output_dir" json:"output_dir"`

	// Specialties lists the recognized specialty on-call rosters.
	Specialties []SpecialtyConfig `yaml:"specialties" json:"specialties"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		ProdID:    "-//Employee Shift Calendar//shiftcal//",
		UIDDomain: "shifts.example.com",
		OutputDir: ".",
		Specialties: []SpecialtyConfig{
			{ID: "cathlab", Label: "Cath Lab On-Call"},
			{ID: "ep", Label: "Electrophysiology On-Call"},
		},
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.ProdID == "" {
		c.ProdID = "-//Employee Shift Calendar//shiftcal//"
	}
	if c.UIDDomain == "" {
		c.UIDDomain = "shifts.example.com"
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Specialties == nil {
		c.Specialties = DefaultConfig().Specialties
	}
}

// SpecialtyLabel resolves a specialty ID to its shift type label.
func (c *Config) SpecialtyLabel(id string) (string, bool) {
	for _, s := range c.Specialties {
		if s.ID == id {
			return s.Label, true
		}
	}
	return "", false
}

// Load loads configuration from the given YAML path. A missing file is not
// an error: the defaults are written there (first run) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultConfig()
		if err := Save(path, cfg); err != nil {
			// Return the defaults alongside the error so the caller can
			// still run with them if it wants to.
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration to path as YAML with 0600 permissions. The
// write is atomic: a temp file in the target directory is renamed over the
// destination, so a crash mid-write never leaves a truncated config behind.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".shiftcal-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	_, err = tmp.Write(data)
	if err == nil {
		// Flush before chmod/rename.
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod config: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("install config: %w", err)
	}

	return nil
}

// Save is a convenience method on Config that delegates to the package-level
// Save function:
//
//	cfg, _ := config.Load(path)
//	// ... mutate cfg ...
//	if err := cfg.Save(path); err != nil { ... }
func (c *Config) Save(path string) error {
	return Save(path, c)
}
