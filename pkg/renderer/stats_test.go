package renderer

import (
	"strings"
	"testing"
	"time"
)

func TestStats_TotalSamples(t *testing.T) {
	stats := Stats{Width: 100, Height: 50, SamplesPerPixel: 10}

	if got := stats.TotalSamples(); got != 50000 {
		t.Errorf("Expected 50000 total samples, got %d", got)
	}
}

func TestStats_Table(t *testing.T) {
	stats := Stats{
		Width:           640,
		Height:          360,
		SamplesPerPixel: 128,
		MaxDepth:        50,
		Workers:         8,
		Duration:        1500 * time.Millisecond,
	}

	table := stats.Table()

	expected := []string{
		"640x360",
		"128",
		"29491200",
		"50",
		"8",
		"1.5s",
	}
	for _, value := range expected {
		if !strings.Contains(table, value) {
			t.Errorf("Expected table to contain %q, got:\n%s", value, table)
		}
	}
}
