package main

import "testing"

func TestStart_ReturnsExitCode(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:-1")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "fatal")

	if code := start(); code != 1 {
		t.Errorf("start() = %d, want 1 when the listener fails", code)
	}
}

func TestStart_InvalidConfig(t *testing.T) {
	t.Setenv("PRICE_ROUNDING", "ceil")

	if code := start(); code != 1 {
		t.Errorf("start() = %d, want 1", code)
	}
}
