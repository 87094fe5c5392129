package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Empty(t, cfg.WebhookURL)
	assert.Equal(t, 20, cfg.AfterHour)
	assert.Equal(t, 0, cfg.AfterMinute)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("GRIND_REMIND_URL", "https://hooks.example/goal")
	t.Setenv("GRIND_USER", "alex")
	t.Setenv("GRIND_REMIND_AFTER", "18:30")

	cfg := LoadConfig()
	assert.Equal(t, "https://hooks.example/goal", cfg.WebhookURL)
	assert.Equal(t, "alex", cfg.User)
	assert.Equal(t, 18, cfg.AfterHour)
	assert.Equal(t, 30, cfg.AfterMinute)
}

func TestLoadConfig_BadClockIgnored(t *testing.T) {
	t.Setenv("GRIND_REMIND_AFTER", "25:99")
	cfg := LoadConfig()
	assert.Equal(t, 20, cfg.AfterHour)
}

func TestParseClock(t *testing.T) {
	h, m, ok := parseClock("07:05")
	assert.True(t, ok)
	assert.Equal(t, 7, h)
	assert.Equal(t, 5, m)

	h, m, ok = parseClock("21")
	assert.True(t, ok)
	assert.Equal(t, 21, h)
	assert.Equal(t, 0, m)

	_, _, ok = parseClock("evening")
	assert.False(t, ok)
}
