package metrics

import (
	"math/rand"
	"time"
)

// MockProvider simulates a laptop-shaped host for UI development and
// tests. Cumulative network counters advance between snapshots so the
// rate tracker has something to chew on.
type MockProvider struct {
	recv uint64
	sent uint64
}

func (m *MockProvider) Init() error {
	m.recv = 512 * 1024 * 1024
	m.sent = 96 * 1024 * 1024
	return nil
}

func (m *MockProvider) Snapshot() (*Snapshot, error) {
	m.recv += uint64(200_000 + rand.Intn(800_000))
	m.sent += uint64(50_000 + rand.Intn(200_000))

	perCore := make([]float64, 8)
	var total float64
	for i := range perCore {
		perCore[i] = 10 + rand.Float64()*40
		total += perCore[i]
	}
	total /= float64(len(perCore))

	usedGB := 10 + rand.Float64()*4

	procs := make([]ProcessEntry, 10)
	cmds := []string{"chrome", "code", "go", "kworker", "bash", "systemd"}
	for i := range procs {
		procs[i] = ProcessEntry{
			Name:       cmds[rand.Intn(len(cmds))],
			PID:        int32(1000 + i),
			CPUPercent: rand.Float64() * 30,
			MemoryMB:   50 + rand.Float64()*500,
		}
	}

	return &Snapshot{
		Timestamp: time.Now(),
		Overview: OverviewInfo{
			OSName:        "mockos 1.0",
			HostName:      "mockhost",
			UptimeSeconds: 86400 + uint64(time.Now().Unix()%1000),
		},
		CPU: CPUInfo{
			Name:         "Mock Core i9",
			UsagePercent: total,
			CoreCount:    len(perCore),
			PerCoreUsage: perCore,
		},
		Memory: MemoryInfo{
			TotalGB:      32,
			UsedGB:       usedGB,
			UsagePercent: usedGB / 32 * 100,
		},
		Disks: []DiskInfo{
			{Name: "/dev/nvme0n1p2", MountPoint: "/", TotalGB: 512, UsedGB: 301, AvailableGB: 211, UsagePercent: 58.8, FSType: "ext4"},
			{Name: "/dev/sda1", MountPoint: "/data", TotalGB: 2048, UsedGB: 1536, AvailableGB: 512, UsagePercent: 75.0, FSType: "ext4"},
		},
		Networks: []NetworkInterface{
			{
				Name:        "wlan0",
				MACAddress:  "aa:bb:cc:dd:ee:ff",
				IPAddresses: []string{"192.168.1.42/24"},
				BytesRecv:   m.recv,
				BytesSent:   m.sent,
			},
		},
		Temperatures: []TempReading{
			{Label: "coretemp_package", Celsius: 52 + rand.Float64()*10},
			{Label: "nvme_composite", Celsius: 38 + rand.Float64()*5},
		},
		TopProcesses: rankProcesses(procs, 10),
	}, nil
}

func (m *MockProvider) Battery() (*BatteryInfo, error) {
	empty := 184.0
	return &BatteryInfo{
		Percentage:     73,
		IsCharging:     false,
		State:          "Discharging",
		HealthPercent:  91,
		TimeToEmptyMin: &empty,
	}, nil
}

func (m *MockProvider) Shutdown() {}
