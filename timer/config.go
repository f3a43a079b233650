package timer

// Default bounds for the configurable duration, in minutes.
const (
	DefaultMinutes    = 25
	DefaultMinMinutes = 1
	DefaultMaxMinutes = 120
)

// Config holds the static configuration for a countdown: the starting
// duration and the range the user may adjust it within.
type Config struct {
	DefaultMinutes int
	MinMinutes     int
	MaxMinutes     int
}

// DefaultConfig returns the 25 minute timer adjustable within [1, 120].
func DefaultConfig() Config {
	return Config{
		DefaultMinutes: DefaultMinutes,
		MinMinutes:     DefaultMinMinutes,
		MaxMinutes:     DefaultMaxMinutes,
	}
}

// Normalize returns a config whose bounds are usable: the minimum is at
// least one minute, the maximum is not below the minimum and the default
// lies between them.
func (c Config) Normalize() Config {
	if c.MinMinutes < 1 {
		c.MinMinutes = 1
	}
	if c.MaxMinutes < c.MinMinutes {
		c.MaxMinutes = c.MinMinutes
	}
	c.DefaultMinutes = c.Clamp(c.DefaultMinutes)
	return c
}

// Clamp limits m to [MinMinutes, MaxMinutes].
func (c Config) Clamp(m int) int {
	if m < c.MinMinutes {
		return c.MinMinutes
	}
	if m > c.MaxMinutes {
		return c.MaxMinutes
	}
	return m
}
