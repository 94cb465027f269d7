package ui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/hostpulse/internal/config"
	"github.com/google/hostpulse/internal/metrics"
)

// ReadModel is the slice of the sampler the UI needs: pull accessors
// plus the manual public-IP refresh trigger.
type ReadModel interface {
	Snapshot() *metrics.Snapshot
	Rates() metrics.NetworkRates
	History(metrics.SeriesID) []float64
	Battery() (*metrics.BatteryInfo, bool)
	PublicIP() (metrics.PublicIPInfo, bool)
	RefreshPublicIP()
}

type TickMsg time.Time

// tickRand adds jitter to the poll interval. Safe here: tick() is only
// called from the single-threaded Bubble Tea event loop.
var tickRand = rand.New(rand.NewSource(time.Now().UnixNano()))

func tick(interval time.Duration) tea.Cmd {
	// Jitter of ±100ms keeps the poll from phase-locking with the
	// sampler tick.
	jitter := time.Duration(tickRand.Intn(200)-100) * time.Millisecond
	return tea.Tick(interval+jitter, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type RootModel struct {
	model  ReadModel
	config *config.ProfileConfiguration

	// Sub-models
	cpu     CPUModel
	process ProcessModel
	system  SystemModel
	footer  FooterModel

	// Layout state
	width, height int
	col1Pct       float64 // Left column (CPU)
	col2Pct       float64 // Middle column (Process); right takes the rest
}

func NewRootModel(model ReadModel, cfg *config.ProfileConfiguration) RootModel {
	col1Pct := 0.32
	col2Pct := 0.36

	if cfg != nil {
		if val, ok := cfg.ColumnWidths["cpu"]; ok {
			col1Pct = val
		}
		if val, ok := cfg.ColumnWidths["process"]; ok {
			col2Pct = val
		}
	}

	return RootModel{
		model:   model,
		config:  cfg,
		cpu:     NewCPUModel(),
		process: NewProcessModel(),
		system:  NewSystemModel(),
		footer:  NewFooterModel(),
		col1Pct: col1Pct,
		col2Pct: col2Pct,
	}
}

func (m RootModel) interval() time.Duration {
	if m.config != nil && m.config.RefreshInterval > 0 {
		return time.Duration(m.config.RefreshInterval) * time.Millisecond
	}
	return metrics.DefaultInterval
}

func (m RootModel) Init() tea.Cmd {
	return tick(m.interval())
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "i":
			m.model.RefreshPublicIP()
		case "[": // Shrink Left Col
			m.col1Pct -= 0.05
			if m.col1Pct < 0.1 {
				m.col1Pct = 0.1
			}
			m.resizeModules()
		case "]": // Expand Left Col
			m.col1Pct += 0.05
			if m.col1Pct+m.col2Pct > 0.9 {
				m.col1Pct = 0.9 - m.col2Pct
			}
			m.resizeModules()
		case "{": // Shrink Middle Col
			m.col2Pct -= 0.05
			if m.col2Pct < 0.1 {
				m.col2Pct = 0.1
			}
			m.resizeModules()
		case "}": // Expand Middle Col
			m.col2Pct += 0.05
			if m.col1Pct+m.col2Pct > 0.9 {
				m.col2Pct = 0.9 - m.col1Pct
			}
			m.resizeModules()
		}

		// Process list owns filtering and selection keys.
		m.process, cmd = m.process.Update(msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeModules()

	case TickMsg:
		if snap := m.model.Snapshot(); snap != nil {
			m.cpu.SetStats(snap, m.model.History(metrics.SeriesCPU))
			m.process.SetStats(snap)
			batt, battRead := m.model.Battery()
			ip, ipOK := m.model.PublicIP()
			m.system.SetStats(systemStats{
				snap:       snap,
				rates:      m.model.Rates(),
				memHistory: m.model.History(metrics.SeriesMemory),
				battery:    batt,
				battRead:   battRead,
				ip:         ip,
				ipOK:       ipOK,
			})
		}
		cmds = append(cmds, tick(m.interval()))
	}

	return m, tea.Batch(cmds...)
}

func (m *RootModel) resizeModules() {
	if m.width == 0 || m.height == 0 {
		return
	}

	w1 := int(float64(m.width) * m.col1Pct)
	w2 := int(float64(m.width) * m.col2Pct)
	w3 := m.width - w1 - w2

	// Height available for columns (minus footer)
	h := m.height - 1
	if h < 1 {
		h = 1
	}

	m.cpu.SetSize(w1, h)
	m.process.SetSize(w2, h)
	m.system.SetSize(w3, h)
	m.footer.SetSize(m.width)
}

func (m RootModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		m.cpu.View(),
		m.process.View(),
		m.system.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		cols,
		m.footer.View(),
	)
}
