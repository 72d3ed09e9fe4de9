package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, expected 0 (time-based)", cfg.Seed)
	}
}
