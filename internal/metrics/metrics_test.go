package metrics

import (
	"errors"
	"os"
	"testing"
)

func TestMockProvider(t *testing.T) {
	provider := &MockProvider{}
	if err := provider.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	snap, err := provider.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap == nil {
		t.Fatal("Snapshot is nil")
	}
	if snap.CPU.UsagePercent < 0 || snap.CPU.UsagePercent > 100 {
		t.Errorf("invalid CPU usage: %f", snap.CPU.UsagePercent)
	}
	if len(snap.TopProcesses) == 0 {
		t.Error("no processes returned in mock mode")
	}
	if len(snap.Networks) == 0 {
		t.Error("no interfaces returned in mock mode")
	}

	// Counters must advance so rates are derivable.
	snap2, _ := provider.Snapshot()
	if snap2.Networks[0].BytesRecv <= snap.Networks[0].BytesRecv {
		t.Error("mock receive counter must be monotonically increasing")
	}
}

func TestRankProcessesTruncatesAndBreaksTies(t *testing.T) {
	entries := []ProcessEntry{
		{Name: "b", PID: 20, CPUPercent: 5},
		{Name: "a", PID: 10, CPUPercent: 5},
		{Name: "hot", PID: 99, CPUPercent: 80},
		{Name: "idle", PID: 1, CPUPercent: 0},
	}
	ranked := rankProcesses(entries, 3)
	if len(ranked) != 3 {
		t.Fatalf("length: got %d, want 3", len(ranked))
	}
	if ranked[0].Name != "hot" {
		t.Errorf("hottest process first, got %q", ranked[0].Name)
	}
	// Equal CPU ties resolve by ascending PID.
	if ranked[1].PID != 10 || ranked[2].PID != 20 {
		t.Errorf("tie-break by ascending pid, got %d then %d", ranked[1].PID, ranked[2].PID)
	}
}

func TestReaderErrClassification(t *testing.T) {
	err := readerErr(FamilyDisk, os.ErrPermission)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("permission errors must classify as ErrPermissionDenied: %v", err)
	}
	if err.Family != FamilyDisk {
		t.Errorf("family: got %s, want %s", err.Family, FamilyDisk)
	}

	err = readerErr(FamilyCPU, errors.New("weird"))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("unknown errors must classify as ErrUnavailable: %v", err)
	}

	err = readerErr(FamilyTemps, ErrUnsupported)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("pre-classified errors must pass through: %v", err)
	}
}

func TestClampPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-3, 0},
		{0, 0},
		{55.5, 55.5},
		{100, 100},
		{101.2, 100},
	}
	for _, tt := range tests {
		if got := clampPercent(tt.in); got != tt.want {
			t.Errorf("clampPercent(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}
