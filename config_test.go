package pageroute

import (
	"errors"
	"testing"
)

func TestVariant(t *testing.T) {
	for _, name := range []string{"pages", "web", "WEB"} {
		if _, ok := Variant(name); !ok {
			t.Errorf("Variant(%q) not found", name)
		}
	}
	if _, ok := Variant("admin"); ok {
		t.Error("unexpected variant admin")
	}
}

func TestConfigHistory(t *testing.T) {
	tests := []struct {
		cfg      Config
		base     string
		mismatch bool
	}{
		{cfg: PagesVariant, base: "/pages/", mismatch: true},
		{cfg: WebVariant, base: "/", mismatch: false},
		{cfg: Config{Prefix: "/", ScopedHistory: true}, base: "/", mismatch: false},
		{cfg: Config{Prefix: "docs", ScopedHistory: true}, base: "/docs/", mismatch: true},
	}
	for _, tt := range tests {
		if got := tt.cfg.History().Base; got != tt.base {
			t.Errorf("%+v: history base = %q, want %q", tt.cfg, got, tt.base)
		}
		if got := tt.cfg.BaseMismatch(); got != tt.mismatch {
			t.Errorf("%+v: BaseMismatch = %v, want %v", tt.cfg, got, tt.mismatch)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Prefix: "/web/{id}/"}).Validate(); !errors.Is(err, ErrInvalidPrefix) {
		t.Errorf("expected ErrInvalidPrefix, got %v", err)
	}
	if err := (Config{Prefix: "/web/", Mode: HistoryMode(9)}).Validate(); !errors.Is(err, ErrInvalidHistory) {
		t.Errorf("expected ErrInvalidHistory, got %v", err)
	}
	if err := WebVariant.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
