// Package config holds the board's tunable timings and locale. The values
// live in a small JSON file so deployments can adjust the debounce and
// auto-hide intervals without a rebuild.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
)

const configFile = ".vitals/config.json"

// Config carries the tunable behavior settings. Zero fields fall back to the
// defaults on load.
type Config struct {
	// DebounceMS is the quiet period before a debounced text field resubmits
	// its filter form.
	DebounceMS int `json:"debounce_ms,omitempty"`
	// AutoHideMS is the delay before an auto-hiding flash container sweeps
	// its remaining items.
	AutoHideMS int `json:"auto_hide_ms,omitempty"`
	// FadeMS is the fade transition applied to flash items before removal.
	FadeMS int `json:"fade_ms,omitempty"`
	// FeedbackMS is how long copy feedback replaces an element's tip text.
	FeedbackMS int `json:"feedback_ms,omitempty"`
	// Locale selects the number formatting locale (BCP 47 tag).
	Locale string `json:"locale,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DebounceMS: 300,
		AutoHideMS: 4500,
		FadeMS:     300,
		FeedbackMS: 1200,
		Locale:     "en",
	}
}

// Load reads the config from disk. A missing file yields the defaults.
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	return cfg, nil
}

// Save writes the config to disk.
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.DebounceMS <= 0 {
		c.DebounceMS = def.DebounceMS
	}
	if c.AutoHideMS <= 0 {
		c.AutoHideMS = def.AutoHideMS
	}
	if c.FadeMS <= 0 {
		c.FadeMS = def.FadeMS
	}
	if c.FeedbackMS <= 0 {
		c.FeedbackMS = def.FeedbackMS
	}
	if c.Locale == "" {
		c.Locale = def.Locale
	}
}

// Debounce returns the debounce quiet period.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// AutoHide returns the flash auto-hide delay.
func (c *Config) AutoHide() time.Duration {
	return time.Duration(c.AutoHideMS) * time.Millisecond
}

// Fade returns the flash fade transition duration.
func (c *Config) Fade() time.Duration {
	return time.Duration(c.FadeMS) * time.Millisecond
}

// Feedback returns the copy feedback duration.
func (c *Config) Feedback() time.Duration {
	return time.Duration(c.FeedbackMS) * time.Millisecond
}

// LanguageTag parses the configured locale, falling back to English when the
// tag is malformed.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
