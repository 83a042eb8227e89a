package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing {
		t.Errorf("Ping: got %v, want %v", Ping(), DefaultPing)
	}
	if Short() != DefaultShort {
		t.Errorf("Short: got %v, want %v", Short(), DefaultShort)
	}
	if Medium() != DefaultMedium {
		t.Errorf("Medium: got %v, want %v", Medium(), DefaultMedium)
	}
}

func TestConfigure_Overrides(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Configure(Config{Short: 42 * time.Second})
	if Short() != 42*time.Second {
		t.Errorf("Short: got %v", Short())
	}
	// Zero values leave the current settings alone.
	if Ping() != DefaultPing || Medium() != DefaultMedium {
		t.Errorf("untouched values changed: ping=%v medium=%v", Ping(), Medium())
	}
}
