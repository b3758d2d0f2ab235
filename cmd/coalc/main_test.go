package main

import (
	"testing"

	"github.com/MineChook/Coal/internal/report"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"silent", report.LogLevelSilent},
		{"error", report.LogLevelError},
		{"verbose", report.LogLevelVerbose},
		{"warn", report.LogLevelWarn},
		{"garbage", report.LogLevelWarn},
		{"", report.LogLevelWarn},
	}
	for _, c := range cases {
		if got := parseLogLevel(c.in); got != c.want {
			t.Errorf("parseLogLevel(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
