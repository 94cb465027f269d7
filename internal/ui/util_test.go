package ui

import (
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
	}

	for _, tt := range tests {
		result := formatBytes(tt.input)
		if result != tt.expected {
			t.Errorf("formatBytes(%d): expected %s, got %s", tt.input, tt.expected, result)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{59, "0m"},
		{120, "2m"},
		{3660, "1h 1m"},
		{90061, "1d 1h 1m"},
	}

	for _, tt := range tests {
		result := formatUptime(tt.input)
		if result != tt.expected {
			t.Errorf("formatUptime(%d): expected %s, got %s", tt.input, tt.expected, result)
		}
	}
}

func TestRenderGraphDimensions(t *testing.T) {
	out := renderGraph([]float64{0, 50, 100}, 10, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
}
