package metrics

import (
	"math"
	"testing"
	"time"
)

func snapWithCounters(recv, sent uint64) *Snapshot {
	return &Snapshot{
		Networks: []NetworkInterface{
			{Name: "eth0", BytesRecv: recv / 2, BytesSent: sent / 2},
			{Name: "wlan0", BytesRecv: recv - recv/2, BytesSent: sent - sent/2},
		},
	}
}

func TestRateTrackerFirstSampleIsZero(t *testing.T) {
	tr := NewRateTracker()
	rates := tr.Update(snapWithCounters(1000, 2000), time.Now())
	if rates.DownloadBytesPerSec != 0 || rates.UploadBytesPerSec != 0 {
		t.Errorf("first sample should yield zero rates, got %+v", rates)
	}
}

func TestRateTrackerComputesThroughput(t *testing.T) {
	tr := NewRateTracker()
	t0 := time.Now()
	tr.Update(snapWithCounters(1000, 2000), t0)
	rates := tr.Update(snapWithCounters(1500, 2500), t0.Add(1500*time.Millisecond))

	want := 500.0 / 1.5
	if math.Abs(rates.DownloadBytesPerSec-want) > 0.1 {
		t.Errorf("download: got %.2f, want %.2f", rates.DownloadBytesPerSec, want)
	}
	if math.Abs(rates.UploadBytesPerSec-want) > 0.1 {
		t.Errorf("upload: got %.2f, want %.2f", rates.UploadBytesPerSec, want)
	}
}

func TestRateTrackerClampsCounterReset(t *testing.T) {
	tr := NewRateTracker()
	t0 := time.Now()
	tr.Update(snapWithCounters(2000, 2000), t0)
	rates := tr.Update(snapWithCounters(500, 500), t0.Add(time.Second))
	if rates.DownloadBytesPerSec != 0 || rates.UploadBytesPerSec != 0 {
		t.Errorf("counter reset must clamp to zero, got %+v", rates)
	}

	// The reset sample becomes the new reference.
	rates = tr.Update(snapWithCounters(1500, 1500), t0.Add(2*time.Second))
	if rates.DownloadBytesPerSec != 1000 {
		t.Errorf("post-reset download: got %.2f, want 1000", rates.DownloadBytesPerSec)
	}
}

func TestRateTrackerFloorsZeroElapsed(t *testing.T) {
	tr := NewRateTracker()
	t0 := time.Now()
	tr.Update(snapWithCounters(0, 0), t0)
	rates := tr.Update(snapWithCounters(1000, 1000), t0)
	if math.IsInf(rates.DownloadBytesPerSec, 1) || math.IsNaN(rates.DownloadBytesPerSec) {
		t.Fatalf("zero elapsed time must not divide by zero, got %v", rates.DownloadBytesPerSec)
	}
	if rates.DownloadBytesPerSec <= 0 {
		t.Errorf("expected positive rate with floored interval, got %v", rates.DownloadBytesPerSec)
	}
}
