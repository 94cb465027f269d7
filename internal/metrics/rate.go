package metrics

import (
	"time"
)

// minInterval floors the elapsed time between two updates. Guards the
// division when two ticks land on (or cross) the same millisecond.
const minInterval = time.Millisecond

// RateTracker derives network throughput from the cumulative interface
// counters of consecutive snapshots. It is the only cross-tick state in
// the pipeline, kept apart from the aggregator so the math is testable
// without touching the OS.
type RateTracker struct {
	hasPrev   bool
	prevRecv  uint64
	prevSent  uint64
	prevStamp time.Time
}

// NewRateTracker returns a tracker with no reference sample.
func NewRateTracker() *RateTracker {
	return &RateTracker{}
}

// Update consumes the interface counters of snap at time now and
// returns the throughput since the previous update. The first call
// stores the reference and returns zero rates. A counter decrease
// (reboot, interface re-enumeration) clamps to zero instead of going
// negative. The actual elapsed wall time is used, not the nominal tick
// interval, so scheduler jitter does not bias the rate.
func (t *RateTracker) Update(snap *Snapshot, now time.Time) NetworkRates {
	var recv, sent uint64
	for _, nic := range snap.Networks {
		recv += nic.BytesRecv
		sent += nic.BytesSent
	}

	if !t.hasPrev {
		t.hasPrev = true
		t.prevRecv, t.prevSent, t.prevStamp = recv, sent, now
		return NetworkRates{}
	}

	dt := now.Sub(t.prevStamp)
	if dt < minInterval {
		dt = minInterval
	}

	var rates NetworkRates
	if recv > t.prevRecv {
		rates.DownloadBytesPerSec = float64(recv-t.prevRecv) / dt.Seconds()
	}
	if sent > t.prevSent {
		rates.UploadBytesPerSec = float64(sent-t.prevSent) / dt.Seconds()
	}

	t.prevRecv, t.prevSent, t.prevStamp = recv, sent, now
	return rates
}
