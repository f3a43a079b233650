// Package config loads and watches the YAML configuration file.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Notification backends.
const (
	BackendFyne   = "fyne"
	BackendSystem = "system"
	BackendNone   = "none"
)

// Config is the on-disk application configuration.
type Config struct {
	App           AppConfig          `yaml:"app"`
	Stopwatch     StopwatchConfig    `yaml:"stopwatch"`
	Timer         TimerConfig        `yaml:"timer"`
	Notifications NotificationConfig `yaml:"notifications"`
	Alarms        []AlarmConfig      `yaml:"alarms"`
	Language      string             `yaml:"language,omitempty"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type StopwatchConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

type TimerConfig struct {
	DefaultMinutes int `yaml:"default_minutes"`
	MinMinutes     int `yaml:"min_minutes"`
	MaxMinutes     int `yaml:"max_minutes"`
}

type NotificationConfig struct {
	Backend string `yaml:"backend"`
	Title   string `yaml:"title"`
	Body    string `yaml:"body"`
	Sound   bool   `yaml:"sound"`
	// Volume is a beep effects.Volume exponent (base 2); 0 leaves the
	// sound untouched.
	Volume          float64 `yaml:"volume"`
	SoundFile       string  `yaml:"sound_file,omitempty"`
	FullScreenAlert bool    `yaml:"fullscreen_alert"`
}

type AlarmConfig struct {
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
}

// DefaultConfig returns the settings used when no file exists yet.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "macTime",
			Version:      "0.1",
			WindowWidth:  250,
			WindowHeight: 160,
		},
		Stopwatch: StopwatchConfig{
			TickInterval: 100 * time.Millisecond,
		},
		Timer: TimerConfig{
			DefaultMinutes: 25,
			MinMinutes:     1,
			MaxMinutes:     120,
		},
		Notifications: NotificationConfig{
			Backend: BackendFyne,
			Title:   "macTime",
			Body:    "Timer Over!",
			Sound:   true,
		},
		Alarms: []AlarmConfig{
			{Name: "Wake Up"},
			{Name: "Meeting"},
			{Name: "Exercise"},
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Stopwatch.TickInterval <= 0 || c.Stopwatch.TickInterval >= time.Second {
		return errors.Errorf("stopwatch.tick_interval must be between 0 and 1s, got %s", c.Stopwatch.TickInterval)
	}
	t := c.Timer
	if t.MinMinutes < 1 {
		return errors.Errorf("timer.min_minutes must be at least 1, got %d", t.MinMinutes)
	}
	if t.MaxMinutes < t.MinMinutes {
		return errors.Errorf("timer.max_minutes (%d) is below timer.min_minutes (%d)", t.MaxMinutes, t.MinMinutes)
	}
	if t.DefaultMinutes < t.MinMinutes || t.DefaultMinutes > t.MaxMinutes {
		return errors.Errorf("timer.default_minutes (%d) is outside [%d, %d]", t.DefaultMinutes, t.MinMinutes, t.MaxMinutes)
	}
	switch strings.ToLower(c.Notifications.Backend) {
	case BackendFyne, BackendSystem, BackendNone:
	default:
		return errors.Errorf("notifications.backend %q is not one of fyne, system, none", c.Notifications.Backend)
	}
	if v := c.Notifications.Volume; v < -10 || v > 10 {
		return errors.Errorf("notifications.volume %g is outside [-10, 10]", v)
	}
	for i, a := range c.Alarms {
		if strings.TrimSpace(a.Name) == "" {
			return errors.Errorf("alarms[%d] has no name", i)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Alarms = append([]AlarmConfig(nil), c.Alarms...)
	return &out
}
