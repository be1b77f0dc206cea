package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"err", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("LOGGER_TEST_KEY", "set")
	if got := getenv("LOGGER_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("getenv = %q, want set", got)
	}
	if got := getenv("LOGGER_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("getenv = %q, want fallback", got)
	}
}

func TestL_LazyInit(t *testing.T) {
	base = zerolog.Logger{}
	l := L()
	if l == nil {
		t.Fatalf("L() returned nil")
	}
	if l.GetLevel() == zerolog.NoLevel {
		t.Fatalf("L() did not initialize the logger")
	}
}
