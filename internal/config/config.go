package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"staffdesk-cli/internal/calendar"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences and per-screen picker defaults.
type Config struct {
	// Today overrides the wall clock (YYYY-MM-DD). Useful for demos and tests.
	Today string `json:"today,omitempty" yaml:"today,omitempty"`

	// Style is the default display style ("long" or "slash").
	Style string `json:"style,omitempty" yaml:"style,omitempty"`

	// Screens maps a screen name (e.g. "leave") to its picker defaults.
	Screens map[string]ScreenDefaults `json:"screens,omitempty" yaml:"screens,omitempty"`
}

// ScreenDefaults seed a date picker opened from one screen.
type ScreenDefaults struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Date is the initial cursor/focus (YYYY-MM-DD). Empty means today.
	Date  string `json:"date,omitempty" yaml:"date,omitempty"`
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
}

// Resolved is a ScreenDefaults with its values parsed.
type Resolved struct {
	Screen string
	Title  string
	Date   calendar.Date
	Style  calendar.Style
}

// Default returns the built-in screen table.
func Default() *Config {
	return &Config{
		Style: "long",
		Screens: map[string]ScreenDefaults{
			"attendance": {Title: "Attendance date"},
			"leave":      {Title: "Leave dates"},
			"expense":    {Title: "Expense date", Style: "slash"},
			"payment":    {Title: "Payment date", Style: "slash"},
		},
	}
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.staffdesk).
	if v := strings.TrimSpace(os.Getenv("STAFFDESK_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".staffdesk"), nil
}

// Load reads path, or the first of config.json / config.yaml / config.yml in
// Dir() when path is empty. A missing file yields Default().
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) != "" {
		return loadFile(path)
	}
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"config.json", "config.yaml", "config.yml"} {
		cfg, err := loadFile(filepath.Join(dir, name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return Default(), nil
}

func loadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		err = json.Unmarshal(b, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// fillDefaults adds built-in screens the file does not mention.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Style == "" {
		c.Style = def.Style
	}
	if c.Screens == nil {
		c.Screens = map[string]ScreenDefaults{}
	}
	for name, sd := range def.Screens {
		if _, ok := c.Screens[name]; !ok {
			c.Screens[name] = sd
		}
	}
}

// Validate checks every date and style in the config.
func (c *Config) Validate() error {
	if c.Today != "" {
		if _, err := calendar.ParseDate(c.Today); err != nil {
			return fmt.Errorf("today: %w", err)
		}
	}
	if c.Style != "" {
		if _, err := calendar.ParseStyle(c.Style); err != nil {
			return err
		}
	}
	for _, name := range c.ScreenNames() {
		sd := c.Screens[name]
		if sd.Date != "" {
			if _, err := calendar.ParseDate(sd.Date); err != nil {
				return fmt.Errorf("screens.%s.date: %w", name, err)
			}
		}
		if sd.Style != "" {
			if _, err := calendar.ParseStyle(sd.Style); err != nil {
				return fmt.Errorf("screens.%s.style: %w", name, err)
			}
		}
	}
	return nil
}

func (c *Config) ScreenNames() []string {
	out := make([]string, 0, len(c.Screens))
	for name := range c.Screens {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// TodayOr returns the configured today, falling back to now's calendar day.
func (c *Config) TodayOr(now time.Time) calendar.Date {
	if d, err := calendar.ParseDate(c.Today); err == nil {
		return d
	}
	return calendar.DateOf(now)
}

// Screen resolves the defaults for name. Unknown screens fall back to
// today and the global style.
func (c *Config) Screen(name string, today calendar.Date) (Resolved, error) {
	r := Resolved{Screen: name, Date: today, Style: calendar.LongMonth}
	if c.Style != "" {
		st, err := calendar.ParseStyle(c.Style)
		if err != nil {
			return Resolved{}, err
		}
		r.Style = st
	}
	sd, ok := c.Screens[name]
	if !ok {
		r.Title = "Select date"
		return r, nil
	}
	r.Title = sd.Title
	if r.Title == "" {
		r.Title = "Select date"
	}
	if sd.Date != "" {
		d, err := calendar.ParseDate(sd.Date)
		if err != nil {
			return Resolved{}, fmt.Errorf("screens.%s.date: %w", name, err)
		}
		r.Date = d
	}
	if sd.Style != "" {
		st, err := calendar.ParseStyle(sd.Style)
		if err != nil {
			return Resolved{}, fmt.Errorf("screens.%s.style: %w", name, err)
		}
		r.Style = st
	}
	return r, nil
}
