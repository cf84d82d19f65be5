package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManagerNilWhenDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// All methods must be safe on the nil manager
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("nil WriteTelemetry: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("nil WritePerf: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("nil Dir: expected empty, got %q", om.Dir())
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run1")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating output manager: %v", err)
	}

	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 300, WormCount: 12, Coverage: 0.4}); err != nil {
		t.Fatalf("writing telemetry: %v", err)
	}
	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 600, WormCount: 12, Coverage: 0.5}); err != nil {
		t.Fatalf("writing telemetry: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("closing: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	// One header plus two records
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "window_end") || !strings.Contains(lines[0], "coverage") {
		t.Errorf("header missing expected columns: %q", lines[0])
	}
	if strings.Contains(lines[1], "window_end") {
		t.Errorf("second line repeats header: %q", lines[1])
	}
}
