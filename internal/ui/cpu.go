package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/hostpulse/internal/metrics"
)

type CPUModel struct {
	width   int
	height  int
	snap    *metrics.Snapshot
	history []float64
}

func NewCPUModel() CPUModel {
	return CPUModel{}
}

func (m CPUModel) Init() tea.Cmd {
	return nil
}

func (m CPUModel) Update(msg tea.Msg) (CPUModel, tea.Cmd) {
	return m, nil
}

func (m *CPUModel) SetStats(snap *metrics.Snapshot, history []float64) {
	m.snap = snap
	m.history = history
}

func (m *CPUModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m CPUModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	style := PanelStyle.Width(m.width).Height(m.height)
	if m.snap == nil {
		return style.Render("Waiting for data...")
	}

	ov := m.snap.Overview
	overview := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(ov.HostName),
		MetricLabelStyle.Render(ov.OSName),
		MetricLabelStyle.Render("Up "+formatUptime(ov.UptimeSeconds)),
	)

	cpuHeader := TitleStyle.Render(fmt.Sprintf("CPU: %.1f%%", m.snap.CPU.UsagePercent))
	cpuName := MetricLabelStyle.Render(fmt.Sprintf("%s (%d cores)", m.snap.CPU.Name, m.snap.CPU.CoreCount))

	cores := renderCores(m.snap.CPU.PerCoreUsage, m.width-4)

	graphHeight := m.height - lipgloss.Height(overview) - lipgloss.Height(cores) - 6
	if graphHeight < 3 {
		graphHeight = 3
	}
	graph := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Usage History"),
		renderGraph(m.history, m.width-4, graphHeight),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		overview,
		"",
		cpuHeader,
		cpuName,
		cores,
		graph,
	)

	return style.Render(content)
}

func renderCores(usage []float64, width int) string {
	var sb strings.Builder
	colWidth := (width / 2) - 2
	if colWidth < 10 {
		colWidth = width // single column
	}

	if len(usage) == 0 {
		return MetricLabelStyle.Render("cpu unavailable")
	}

	for i := 0; i < len(usage); i += 2 {
		label1 := fmt.Sprintf("%d", i)
		bar1 := renderBarCompact(int(usage[i]), 100, colWidth, label1)

		if i+1 < len(usage) {
			label2 := fmt.Sprintf("%d", i+1)
			bar2 := renderBarCompact(int(usage[i+1]), 100, colWidth, label2)

			// Pad to align
			padding := width - lipgloss.Width(bar1) - lipgloss.Width(bar2)
			if padding < 0 {
				padding = 0
			}
			sb.WriteString(bar1 + strings.Repeat(" ", padding) + bar2 + "\n")
		} else {
			sb.WriteString(bar1 + "\n")
		}
	}

	return sb.String()
}
