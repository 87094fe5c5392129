package reminder

import (
	"os"
	"strconv"
	"strings"
)

// DefaultConfig returns reminder settings with the webhook disabled
// (empty URL) and a 20:00 local cutoff.
func DefaultConfig() Config {
	return Config{
		User:      "grind",
		AfterHour: 20,
	}
}

// LoadConfig reads reminder configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GRIND_REMIND_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("GRIND_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("GRIND_REMIND_AFTER"); v != "" {
		if h, m, ok := parseClock(v); ok {
			cfg.AfterHour, cfg.AfterMinute = h, m
		}
	}
	return cfg
}

// parseClock parses "HH:MM" (or bare "HH") local time.
func parseClock(s string) (hour, minute int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m := 0
	if len(parts) == 2 {
		m, err = strconv.Atoi(parts[1])
		if err != nil || m < 0 || m > 59 {
			return 0, 0, false
		}
	}
	return h, m, true
}
