package elevconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/wesleywatkins/KernelElevator/internal/logger"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Error writing %v: %v", path, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	c, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() returned %v", err)
	}
	if c.BroadcastAddress != DEFAULT_BROADCAST_ADDRESS || c.BroadcastPeriod != DEFAULT_BROADCAST_PERIOD {
		t.Errorf("Load() broadcast = (%v, %v), expected defaults", c.BroadcastAddress, c.BroadcastPeriod)
	}
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %v, expected info", c.LogLevel)
	}
}

func TestLoadYAMLThenEnv(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	configPath := writeFile(t, "elevator.yaml", `
log_level: debug
identifier: lobby
broadcast_period: 200ms
`)
	envPath := writeFile(t, ".env", "ELEVATOR_ID=annex\nELEVATOR_BROADCAST_PERIOD=50ms\n")

	c, err := Load(configPath, envPath)
	if err != nil {
		t.Fatalf("Load() returned %v", err)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, expected debug", c.LogLevel)
	}
	if c.Identifier != "annex" {
		t.Errorf("Identifier = %v, expected the .env value annex", c.Identifier)
	}
	if c.BroadcastPeriod != 50*time.Millisecond {
		t.Errorf("BroadcastPeriod = %v, expected 50ms", c.BroadcastPeriod)
	}
	if c.BroadcastAddress != DEFAULT_BROADCAST_ADDRESS {
		t.Errorf("BroadcastAddress = %v, expected default", c.BroadcastAddress)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	if _, err := Load(writeFile(t, "empty.yaml", ""), ""); err != nil {
		t.Errorf("Load() of an empty file returned %v", err)
	}
}

// Travel timings are fixed, so a config file cannot carry them.
func TestLoadRejectsTimings(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	for _, key := range []string{"time_between_floors", "time_for_loading", "idle_sleep"} {
		if _, err := Load(writeFile(t, key+".yaml", key+": 100ms\n"), ""); err == nil {
			t.Errorf("Load() accepted %v", key)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	if _, err := Load(writeFile(t, "bad.yaml", "log_level: [unterminated"), ""); err == nil {
		t.Errorf("Load() accepted malformed YAML")
	}
	if _, err := Load("", writeFile(t, ".env", "ELEVATOR_BROADCAST_PERIOD=soon\n")); err == nil {
		t.Errorf("Load() accepted a malformed duration")
	}
	if _, err := Load(writeFile(t, "level.yaml", "log_level: loud\n"), ""); err == nil {
		t.Errorf("Load() accepted an unknown log level")
	}
	if _, err := Load(writeFile(t, "period.yaml", "broadcast_period: -1s\n"), ""); err == nil {
		t.Errorf("Load() accepted a negative broadcast period")
	}
}
