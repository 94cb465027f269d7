package metrics

import (
	"time"
)

// Snapshot holds the normalized system state captured by one tick.
// It is immutable once published: the sampler builds a fresh value per
// tick and readers only ever see complete snapshots.
type Snapshot struct {
	Timestamp    time.Time
	Overview     OverviewInfo
	CPU          CPUInfo
	Memory       MemoryInfo
	Disks        []DiskInfo
	Networks     []NetworkInterface
	Temperatures []TempReading
	TopProcesses []ProcessEntry

	// Degraded lists the metric families that could not be read this
	// tick and were substituted with their zero value.
	Degraded []Family
}

// HasDegraded reports whether family fell back to its zero value this
// tick.
func (s *Snapshot) HasDegraded(f Family) bool {
	for _, d := range s.Degraded {
		if d == f {
			return true
		}
	}
	return false
}

// OverviewInfo identifies the host.
type OverviewInfo struct {
	OSName        string
	HostName      string
	UptimeSeconds uint64
}

// CPUInfo holds global and per-core usage. Usage is the busy fraction
// since the previous tick; len(PerCoreUsage) == CoreCount and every
// value is in [0,100].
type CPUInfo struct {
	Name         string
	UsagePercent float64
	CoreCount    int
	PerCoreUsage []float64
}

// MemoryInfo reports RAM in base-2 gigabytes.
type MemoryInfo struct {
	TotalGB      float64
	UsedGB       float64
	UsagePercent float64
}

// DiskInfo describes one mounted physical partition.
type DiskInfo struct {
	Name         string
	MountPoint   string
	TotalGB      float64
	UsedGB       float64
	AvailableGB  float64
	UsagePercent float64
	FSType       string
}

// NetworkInterface carries cumulative byte counters since interface
// initialization. Rates are derived by the RateTracker, never read here.
type NetworkInterface struct {
	Name        string
	MACAddress  string
	IPAddresses []string
	BytesRecv   uint64
	BytesSent   uint64
}

// TempReading is one thermal sensor sample.
type TempReading struct {
	Label   string
	Celsius float64
}

// ProcessEntry is one row of the top-processes list.
type ProcessEntry struct {
	Name       string
	PID        int32
	CPUPercent float64
	MemoryMB   float64
}

// BatteryInfo describes the first battery found. A nil *BatteryInfo
// means the host has no battery hardware, which is not an error.
type BatteryInfo struct {
	Percentage     float64
	IsCharging     bool
	State          string
	HealthPercent  float64
	CycleCount     *int
	TimeToEmptyMin *float64
	TimeToFullMin  *float64
}

// PublicIPInfo is the decoded ipinfo payload. Optional fields stay
// empty when the service omits them.
type PublicIPInfo struct {
	IP      string `json:"ip"`
	City    string `json:"city,omitempty"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`
	Org     string `json:"org,omitempty"`
}

// NetworkRates is the throughput derived from two consecutive
// snapshots. Values are clamped at zero.
type NetworkRates struct {
	DownloadBytesPerSec float64
	UploadBytesPerSec   float64
}

// SeriesID names a rolling history series.
type SeriesID string

const (
	SeriesCPU    SeriesID = "cpu"
	SeriesMemory SeriesID = "memory"
)

// Provider defines the interface for reading system metrics.
type Provider interface {
	Init() error
	Snapshot() (*Snapshot, error)
	Battery() (*BatteryInfo, error)
	Shutdown()
}
