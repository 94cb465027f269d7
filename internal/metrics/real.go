package metrics

import (
	"log"
	"sort"
	"time"

	"github.com/distatus/battery"
	"github.com/mindprince/gonvml"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

const bytesPerGB = 1024 * 1024 * 1024

// RealProvider reads live metrics through gopsutil. CPU usage comes out
// as the busy fraction since the previous Snapshot call, so the sampling
// window equals the tick interval as long as the sampler is the only
// caller.
type RealProvider struct {
	// TopProcesses caps the process list; zero means the default of 10.
	TopProcesses int

	hasGPU bool
	warned map[Family]bool
}

func (r *RealProvider) Init() error {
	if err := gonvml.Initialize(); err != nil {
		log.Printf("NVML initialization failed (GPU temperature unavailable): %v", err)
		r.hasGPU = false
	} else {
		r.hasGPU = true
	}
	r.warned = make(map[Family]bool)

	// Prime the delta-based CPU counters so the first tick reports a
	// real interval instead of usage-since-boot.
	_, _ = cpu.Percent(0, true)
	return nil
}

// Snapshot reads every metric family once and assembles the result.
// A failing family degrades to its zero value; the others are kept.
func (r *RealProvider) Snapshot() (*Snapshot, error) {
	snap := &Snapshot{Timestamp: time.Now()}

	if ov, err := r.readOverview(); err != nil {
		r.degrade(snap, FamilyOverview, err)
	} else {
		snap.Overview = ov
	}
	if c, err := r.readCPU(); err != nil {
		r.degrade(snap, FamilyCPU, err)
	} else {
		snap.CPU = c
	}
	if m, err := r.readMemory(); err != nil {
		r.degrade(snap, FamilyMemory, err)
	} else {
		snap.Memory = m
	}
	if d, err := r.readDisks(); err != nil {
		r.degrade(snap, FamilyDisk, err)
	} else {
		snap.Disks = d
	}
	if n, err := r.readNetworks(); err != nil {
		r.degrade(snap, FamilyNetwork, err)
	} else {
		snap.Networks = n
	}
	if t, err := r.readTemperatures(); err != nil {
		r.degrade(snap, FamilyTemps, err)
	} else {
		snap.Temperatures = t
	}
	if p, err := r.readProcesses(); err != nil {
		r.degrade(snap, FamilyProcesses, err)
	} else {
		snap.TopProcesses = p
	}

	return snap, nil
}

func (r *RealProvider) degrade(snap *Snapshot, family Family, err error) {
	snap.Degraded = append(snap.Degraded, family)
	if !r.warned[family] {
		r.warned[family] = true
		log.Printf("degraded: %v", readerErr(family, err))
	}
}

func (r *RealProvider) readOverview() (OverviewInfo, error) {
	info, err := host.Info()
	if err != nil {
		return OverviewInfo{}, err
	}
	osName := info.Platform
	if info.PlatformVersion != "" {
		osName += " " + info.PlatformVersion
	}
	return OverviewInfo{
		OSName:        osName,
		HostName:      info.Hostname,
		UptimeSeconds: info.Uptime,
	}, nil
}

func (r *RealProvider) readCPU() (CPUInfo, error) {
	perCore, err := cpu.Percent(0, true)
	if err != nil {
		return CPUInfo{}, err
	}
	c := CPUInfo{
		CoreCount:    len(perCore),
		PerCoreUsage: make([]float64, len(perCore)),
	}
	for i, p := range perCore {
		c.PerCoreUsage[i] = clampPercent(p)
		c.UsagePercent += c.PerCoreUsage[i]
	}
	if len(perCore) > 0 {
		c.UsagePercent /= float64(len(perCore))
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		c.Name = infos[0].ModelName
	}
	return c, nil
}

func (r *RealProvider) readMemory() (MemoryInfo, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryInfo{}, err
	}
	m := MemoryInfo{
		TotalGB: float64(vm.Total) / bytesPerGB,
		UsedGB:  float64(vm.Used) / bytesPerGB,
	}
	if vm.Total > 0 {
		m.UsagePercent = clampPercent(float64(vm.Used) / float64(vm.Total) * 100)
	}
	return m, nil
}

func (r *RealProvider) readDisks() ([]DiskInfo, error) {
	// all=false keeps physical devices only, skipping the
	// proc/sys/tmpfs style pseudo filesystems.
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}
	var disks []DiskInfo
	for _, part := range parts {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil || usage.Total == 0 {
			continue
		}
		disks = append(disks, DiskInfo{
			Name:         part.Device,
			MountPoint:   part.Mountpoint,
			TotalGB:      float64(usage.Total) / bytesPerGB,
			UsedGB:       float64(usage.Used) / bytesPerGB,
			AvailableGB:  float64(usage.Free) / bytesPerGB,
			UsagePercent: clampPercent(float64(usage.Used) / float64(usage.Total) * 100),
			FSType:       part.Fstype,
		})
	}
	return disks, nil
}

func (r *RealProvider) readNetworks() ([]NetworkInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	counters := make(map[string]net.IOCountersStat)
	if stats, err := net.IOCounters(true); err == nil {
		for _, st := range stats {
			counters[st.Name] = st
		}
	}
	var nics []NetworkInterface
	for _, iface := range ifaces {
		if iface.HardwareAddr == "" {
			continue
		}
		nic := NetworkInterface{
			Name:       iface.Name,
			MACAddress: iface.HardwareAddr,
		}
		for _, addr := range iface.Addrs {
			nic.IPAddresses = append(nic.IPAddresses, addr.Addr)
		}
		if st, ok := counters[iface.Name]; ok {
			nic.BytesRecv = st.BytesRecv
			nic.BytesSent = st.BytesSent
		}
		nics = append(nics, nic)
	}
	return nics, nil
}

func (r *RealProvider) readTemperatures() ([]TempReading, error) {
	var temps []TempReading
	sensors, err := host.SensorsTemperatures()
	if err == nil {
		for _, s := range sensors {
			if s.Temperature <= 0 {
				continue
			}
			temps = append(temps, TempReading{Label: s.SensorKey, Celsius: s.Temperature})
		}
	}
	if r.hasGPU {
		if count, cerr := gonvml.DeviceCount(); cerr == nil && count > 0 {
			if dev, derr := gonvml.DeviceHandleByIndex(0); derr == nil {
				if t, terr := dev.Temperature(); terr == nil {
					label := "gpu"
					if name, nerr := dev.Name(); nerr == nil {
						label = name
					}
					temps = append(temps, TempReading{Label: label, Celsius: float64(t)})
				}
			}
		}
	}
	if len(temps) == 0 && err != nil {
		return nil, err
	}
	return temps, nil
}

func (r *RealProvider) readProcesses() ([]ProcessEntry, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	entries := make([]ProcessEntry, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil || name == "" {
			continue
		}
		cpuPct, _ := p.CPUPercent()
		var memMB float64
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			memMB = float64(mi.RSS) / (1024 * 1024)
		}
		entries = append(entries, ProcessEntry{
			Name:       name,
			PID:        p.Pid,
			CPUPercent: cpuPct,
			MemoryMB:   memMB,
		})
	}
	limit := r.TopProcesses
	if limit <= 0 {
		limit = 10
	}
	return rankProcesses(entries, limit), nil
}

// rankProcesses sorts by CPU usage descending, ties broken by ascending
// PID so the list is deterministic, and truncates to limit.
func rankProcesses(entries []ProcessEntry, limit int) []ProcessEntry {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CPUPercent != entries[j].CPUPercent {
			return entries[i].CPUPercent > entries[j].CPUPercent
		}
		return entries[i].PID < entries[j].PID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Battery returns nil when the host has no battery hardware.
func (r *RealProvider) Battery() (*BatteryInfo, error) {
	bats, err := battery.GetAll()
	if err != nil {
		if _, partial := err.(battery.Errors); !partial {
			return nil, nil
		}
	}
	for _, bat := range bats {
		if bat == nil || bat.Full == 0 {
			continue
		}
		info := &BatteryInfo{
			Percentage: clampPercent(bat.Current / bat.Full * 100),
			IsCharging: bat.State == battery.Charging,
			State:      bat.State.String(),
		}
		if bat.Design > 0 {
			info.HealthPercent = clampPercent(bat.Full / bat.Design * 100)
		}
		if bat.ChargeRate > 0 {
			switch bat.State {
			case battery.Discharging:
				mins := bat.Current / bat.ChargeRate * 60
				info.TimeToEmptyMin = &mins
			case battery.Charging:
				mins := (bat.Full - bat.Current) / bat.ChargeRate * 60
				info.TimeToFullMin = &mins
			}
		}
		return info, nil
	}
	return nil, nil
}

func (r *RealProvider) Shutdown() {
	if r.hasGPU {
		gonvml.Shutdown()
	}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
