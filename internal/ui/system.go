package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/hostpulse/internal/metrics"
)

// systemStats bundles everything the right-hand panel renders in one
// consistent view of the read model.
type systemStats struct {
	snap       *metrics.Snapshot
	rates      metrics.NetworkRates
	memHistory []float64
	battery    *metrics.BatteryInfo
	battRead   bool
	ip         metrics.PublicIPInfo
	ipOK       bool
}

type SystemModel struct {
	width  int
	height int
	stats  systemStats
}

func NewSystemModel() SystemModel {
	return SystemModel{}
}

func (m SystemModel) Init() tea.Cmd {
	return nil
}

func (m SystemModel) Update(msg tea.Msg) (SystemModel, tea.Cmd) {
	return m, nil
}

func (m *SystemModel) SetStats(stats systemStats) {
	m.stats = stats
}

func (m *SystemModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m SystemModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	style := PanelStyle.Width(m.width).Height(m.height)
	snap := m.stats.snap
	if snap == nil {
		return style.Render("Waiting for data...")
	}

	barWidth := m.width - 4
	sections := []string{
		m.renderMemory(snap, barWidth),
		m.renderNetwork(snap, barWidth),
		m.renderDisks(snap, barWidth),
		m.renderTemps(snap),
		m.renderBattery(),
		m.renderPublicIP(),
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m SystemModel) renderMemory(snap *metrics.Snapshot, barWidth int) string {
	title := TitleStyle.Render("Memory")
	if snap.HasDegraded(metrics.FamilyMemory) {
		return lipgloss.JoinVertical(lipgloss.Left, title, unavailable())
	}
	mem := snap.Memory
	bar := renderBar(int(mem.UsagePercent), 100, barWidth,
		fmt.Sprintf("%.1f/%.1f GB", mem.UsedGB, mem.TotalGB))

	graph := renderGraph(m.stats.memHistory, barWidth, 3)
	return lipgloss.JoinVertical(lipgloss.Left, title, bar, graph, "")
}

func (m SystemModel) renderNetwork(snap *metrics.Snapshot, barWidth int) string {
	title := TitleStyle.Render("Network")
	if snap.HasDegraded(metrics.FamilyNetwork) {
		return lipgloss.JoinVertical(lipgloss.Left, title, unavailable())
	}
	down := fmt.Sprintf("↓ %s/s", formatBytes(uint64(m.stats.rates.DownloadBytesPerSec)))
	up := fmt.Sprintf("↑ %s/s", formatBytes(uint64(m.stats.rates.UploadBytesPerSec)))
	rates := MetricValueStyle.Render(down + "  " + up)

	var ifaces []string
	for _, nic := range snap.Networks {
		line := fmt.Sprintf("%-8s %s", nic.Name, nic.MACAddress)
		if len(nic.IPAddresses) > 0 {
			line = fmt.Sprintf("%-8s %s", nic.Name, nic.IPAddresses[0])
		}
		ifaces = append(ifaces, MetricLabelStyle.Render(line))
	}
	body := append([]string{title, rates}, ifaces...)
	body = append(body, "")
	return lipgloss.JoinVertical(lipgloss.Left, body...)
}

func (m SystemModel) renderDisks(snap *metrics.Snapshot, barWidth int) string {
	title := TitleStyle.Render("Disks")
	if snap.HasDegraded(metrics.FamilyDisk) {
		return lipgloss.JoinVertical(lipgloss.Left, title, unavailable())
	}
	if len(snap.Disks) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, MetricLabelStyle.Render("no mounted disks"), "")
	}
	rows := []string{title}
	for _, d := range snap.Disks {
		label := fmt.Sprintf("%s %.0f/%.0f GB", d.MountPoint, d.UsedGB, d.TotalGB)
		rows = append(rows, renderBar(int(d.UsagePercent), 100, barWidth, label))
	}
	rows = append(rows, "")
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m SystemModel) renderTemps(snap *metrics.Snapshot) string {
	title := TitleStyle.Render("Temperatures")
	if snap.HasDegraded(metrics.FamilyTemps) {
		return lipgloss.JoinVertical(lipgloss.Left, title, unavailable())
	}
	if len(snap.Temperatures) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, MetricLabelStyle.Render("no sensors"), "")
	}
	rows := []string{title}
	for i, tr := range snap.Temperatures {
		if i >= 4 {
			rows = append(rows, MetricLabelStyle.Render(fmt.Sprintf("… %d more", len(snap.Temperatures)-i)))
			break
		}
		line := fmt.Sprintf("%-24s %d°C", truncateLabel(tr.Label, 24), int(tr.Celsius))
		st := MetricValueStyle
		if tr.Celsius > 85 {
			st = AlertStyle
		}
		rows = append(rows, st.Render(line))
	}
	rows = append(rows, "")
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m SystemModel) renderBattery() string {
	title := TitleStyle.Render("Battery")
	if !m.stats.battRead {
		return lipgloss.JoinVertical(lipgloss.Left, title, MetricLabelStyle.Render("reading..."), "")
	}
	b := m.stats.battery
	if b == nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, MetricLabelStyle.Render("no battery"), "")
	}
	state := b.State
	if b.IsCharging {
		state = "⚡ " + state
	}
	rows := []string{
		title,
		MetricValueStyle.Render(fmt.Sprintf("%.0f%% (%s)  health %.0f%%", b.Percentage, state, b.HealthPercent)),
	}
	if b.TimeToEmptyMin != nil {
		rows = append(rows, MetricLabelStyle.Render(fmt.Sprintf("%.0f min remaining", *b.TimeToEmptyMin)))
	}
	if b.TimeToFullMin != nil {
		rows = append(rows, MetricLabelStyle.Render(fmt.Sprintf("%.0f min to full", *b.TimeToFullMin)))
	}
	if b.CycleCount != nil {
		rows = append(rows, MetricLabelStyle.Render(fmt.Sprintf("%d cycles", *b.CycleCount)))
	}
	rows = append(rows, "")
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m SystemModel) renderPublicIP() string {
	title := TitleStyle.Render("Public IP")
	if !m.stats.ipOK {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			MetricLabelStyle.Render("unavailable (press 'i' to retry)"))
	}
	ip := m.stats.ip
	rows := []string{title, MetricValueStyle.Render(ip.IP)}
	var loc []string
	for _, part := range []string{ip.City, ip.Region, ip.Country} {
		if part != "" {
			loc = append(loc, part)
		}
	}
	if len(loc) > 0 {
		rows = append(rows, MetricLabelStyle.Render(strings.Join(loc, ", ")))
	}
	if ip.Org != "" {
		rows = append(rows, MetricLabelStyle.Render(ip.Org))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func unavailable() string {
	return AlertStyle.Render("unavailable")
}

func truncateLabel(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
