package metrics

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultInterval is the metric tick interval.
const DefaultInterval = 1500 * time.Millisecond

// batteryInterval paces the battery side-loop. Battery state moves
// slowly and the kernel call can stall, so it stays off the tick path.
const batteryInterval = 10 * time.Second

// SamplerOptions tune the sampler. Zero values select the defaults.
type SamplerOptions struct {
	Interval      time.Duration
	HistoryLength int
	IPEndpoint    string
}

// Sampler drives the metric tick loop and owns the shared read model:
// the latest snapshot, derived network rates, rolling history, battery
// state and public IP. Exactly one goroutine per concern writes; any
// number of readers pull through the accessors. Every publish swaps
// complete values under the lock, so readers never observe a torn
// update.
type Sampler struct {
	provider Provider
	interval time.Duration
	tracker  *RateTracker
	resolver *PublicIPResolver

	refreshIP chan struct{}

	mu      sync.RWMutex
	snap    *Snapshot
	rates   NetworkRates
	history map[SeriesID]*Series
	batt    *BatteryInfo
	hasBatt bool
	ip      *PublicIPInfo
}

// NewSampler wires a sampler around provider. The provider must be
// initialized before Run is called.
func NewSampler(provider Provider, opts SamplerOptions) *Sampler {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	return &Sampler{
		provider:  provider,
		interval:  opts.Interval,
		tracker:   NewRateTracker(),
		resolver:  NewPublicIPResolver(opts.IPEndpoint),
		refreshIP: make(chan struct{}, 1),
		history: map[SeriesID]*Series{
			SeriesCPU:    NewSeries(opts.HistoryLength),
			SeriesMemory: NewSeries(opts.HistoryLength),
		},
	}
}

// Run blocks until ctx is cancelled, ticking the metric loop at the
// configured interval. Ticks are strictly sequential; an overrunning
// tick delays the next one instead of overlapping it. The battery and
// public-IP loops run on their own goroutines and stop with ctx.
func (s *Sampler) Run(ctx context.Context) {
	go s.batteryLoop(ctx)
	go s.ipLoop(ctx)

	s.tick()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Sampler) tick() {
	snap, err := s.provider.Snapshot()
	if err != nil || snap == nil {
		// Only a provider that cannot produce any snapshot at all ends
		// up here; degraded families arrive inside snap.
		log.Printf("snapshot failed: %v", err)
		return
	}
	rates := s.tracker.Update(snap, time.Now())

	s.mu.Lock()
	s.snap = snap
	s.rates = rates
	s.history[SeriesCPU].Append(snap.CPU.UsagePercent)
	s.history[SeriesMemory].Append(snap.Memory.UsagePercent)
	s.mu.Unlock()
}

func (s *Sampler) batteryLoop(ctx context.Context) {
	s.readBattery()
	ticker := time.NewTicker(batteryInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.readBattery()
		}
	}
}

func (s *Sampler) readBattery() {
	info, err := s.provider.Battery()
	if err != nil {
		return
	}
	s.mu.Lock()
	s.batt = info
	s.hasBatt = true
	s.mu.Unlock()
}

func (s *Sampler) ipLoop(ctx context.Context) {
	s.resolveIP(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.refreshIP:
			s.resolveIP(ctx)
		}
	}
}

// resolveIP publishes only on success; a failed attempt keeps the last
// known value so stale-but-present data survives flaky networks.
func (s *Sampler) resolveIP(ctx context.Context) {
	info, err := s.resolver.Resolve(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("public ip lookup failed: %v", err)
		}
		return
	}
	s.mu.Lock()
	s.ip = info
	s.mu.Unlock()
}

// RefreshPublicIP requests a new lookup. Non-blocking; a request made
// while one is already pending is coalesced.
func (s *Sampler) RefreshPublicIP() {
	select {
	case s.refreshIP <- struct{}{}:
	default:
	}
}

// Snapshot returns the latest published snapshot, or nil before the
// first tick completes. The snapshot is immutable; callers must not
// modify it.
func (s *Sampler) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Rates returns the network throughput derived on the latest tick.
func (s *Sampler) Rates() NetworkRates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rates
}

// History returns the samples of the named series oldest-first, up to
// the configured capacity. Unknown series IDs yield nil.
func (s *Sampler) History(id SeriesID) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	series, ok := s.history[id]
	if !ok {
		return nil
	}
	return series.Values()
}

// Battery returns the latest battery reading. nil info with ok true
// means the host has no battery; ok false means no reading happened
// yet.
func (s *Sampler) Battery() (info *BatteryInfo, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batt, s.hasBatt
}

// PublicIP returns the last successful lookup result, if any.
func (s *Sampler) PublicIP() (PublicIPInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ip == nil {
		return PublicIPInfo{}, false
	}
	return *s.ip, true
}
