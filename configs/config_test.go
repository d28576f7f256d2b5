package config

import "testing"

func TestConfigReadsEnvironment(t *testing.T) {
	t.Setenv("TRAVEL_TEST_KEY", "value-1")

	if got := Config("TRAVEL_TEST_KEY"); got != "value-1" {
		t.Errorf("expected value-1, got %q", got)
	}
	if got := Config("TRAVEL_TEST_UNSET"); got != "" {
		t.Errorf("unset key should read empty, got %q", got)
	}
}

func TestConfigOrFallback(t *testing.T) {
	t.Setenv("TRAVEL_TEST_KEY", "value-1")

	if got := ConfigOr("TRAVEL_TEST_KEY", "fallback"); got != "value-1" {
		t.Errorf("set key should win over the fallback, got %q", got)
	}
	if got := ConfigOr("TRAVEL_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("unset key should fall back, got %q", got)
	}
}
