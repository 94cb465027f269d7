package ui

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/hostpulse/internal/metrics"
)

type ProcessModel struct {
	table     table.Model
	width     int
	height    int
	snap      *metrics.Snapshot
	filter    string
	filtering bool
	textInput textinput.Model
}

func NewProcessModel() ProcessModel {
	columns := []table.Column{
		{Title: "PID", Width: 7},
		{Title: "CPU%", Width: 6},
		{Title: "Mem", Width: 9},
		{Title: "Name", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ColorSlate)).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(ColorAbyss)).
		Background(lipgloss.Color(ColorFoam)).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Prompt = "/"
	ti.CharLimit = 30
	ti.Width = 20

	return ProcessModel{
		table:     t,
		textInput: ti,
	}
}

func (m ProcessModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ProcessModel) Update(msg tea.Msg) (ProcessModel, tea.Cmd) {
	var cmd tea.Cmd

	if m.filtering {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter = m.textInput.Value()
				m.table.Focus()
				return m, nil
			}
		}
		m.textInput, cmd = m.textInput.Update(msg)
		m.filter = m.textInput.Value() // Live filter
		m.refreshRows()
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "/":
			m.filtering = true
			m.textInput.Focus()
			m.table.Blur()
			return m, textinput.Blink
		case "k", "f9":
			if len(m.table.SelectedRow()) > 0 {
				pidStr := m.table.SelectedRow()[0]
				var pid int
				fmt.Sscanf(pidStr, "%d", &pid)
				p, err := os.FindProcess(pid)
				if err == nil {
					_ = p.Signal(syscall.SIGTERM)
				}
			}
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ProcessModel) SetStats(snap *metrics.Snapshot) {
	m.snap = snap
	m.refreshRows()
}

func (m *ProcessModel) refreshRows() {
	if m.snap == nil {
		return
	}
	procs := m.snap.TopProcesses

	// The list arrives sorted by CPU descending; filtering preserves
	// that order.
	var filtered []metrics.ProcessEntry
	if m.filter != "" {
		lowerFilter := strings.ToLower(m.filter)
		for _, p := range procs {
			if strings.Contains(strings.ToLower(p.Name), lowerFilter) ||
				fmt.Sprintf("%d", p.PID) == lowerFilter {
				filtered = append(filtered, p)
			}
		}
	} else {
		filtered = procs
	}

	rows := make([]table.Row, len(filtered))
	for i, p := range filtered {
		rows[i] = table.Row{
			fmt.Sprintf("%d", p.PID),
			fmt.Sprintf("%.1f", p.CPUPercent),
			fmt.Sprintf("%.0f MB", p.MemoryMB),
			p.Name,
		}
	}
	m.table.SetRows(rows)
}

func (m *ProcessModel) SetSize(w, h int) {
	m.width = w
	m.height = h

	tableHeight := h - 4
	if tableHeight < 1 {
		tableHeight = 1
	}
	m.table.SetHeight(tableHeight)

	cols := m.table.Columns()
	cols[0].Width = 7
	cols[1].Width = 6
	cols[2].Width = 9

	usedWidth := 7 + 6 + 9 + 10 // + padding
	remaining := w - usedWidth
	if remaining < 10 {
		remaining = 10
	}
	cols[3].Width = remaining
	m.table.SetColumns(cols)
}

func (m ProcessModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	style := PanelStyle.Width(m.width).Height(m.height)

	title := "Top Processes"
	if m.filtering {
		title = m.textInput.View()
	} else if m.filter != "" {
		title = fmt.Sprintf("Filter: %s", m.filter)
	}

	header := TitleStyle.Render(title)
	if m.snap != nil && m.snap.HasDegraded(metrics.FamilyProcesses) {
		return style.Render(lipgloss.JoinVertical(lipgloss.Left,
			header,
			MetricLabelStyle.Render("process list unavailable"),
		))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.table.View(),
	))
}
