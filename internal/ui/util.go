package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderBar(value, max, width int, label string) string {
	if max <= 0 {
		max = 100
	} // Avoid divide by zero
	if width < 10 {
		return label
	}
	barWidth := width - lipgloss.Width(label) - 2
	if barWidth < 0 {
		barWidth = 0
	}

	ratio := float64(value) / float64(max)
	if ratio > 1.0 {
		ratio = 1.0
	}
	filled := int(ratio * float64(barWidth))
	empty := barWidth - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)

	style := BarStyle
	if ratio > 0.8 {
		style = AlertBarStyle
	}

	return fmt.Sprintf("%s %s", label, style.Render(bar))
}

func renderBarCompact(value, max, width int, label string) string {
	// [Label  |||||     ]
	labelLen := lipgloss.Width(label)
	barLen := width - labelLen - 3 // [ ] and space
	if barLen < 5 {
		return fmt.Sprintf("%s %d%%", label, value)
	}

	filled := int(float64(value) / float64(max) * float64(barLen))
	if filled > barLen {
		filled = barLen
	}
	empty := barLen - filled

	bar := strings.Repeat("|", filled) + strings.Repeat(" ", empty)

	style := BarStyle
	if value > 80 {
		style = AlertBarStyle
	}

	return fmt.Sprintf("%s [%s]", label, style.Render(bar))
}

// renderGraph draws values (0-100, oldest-first) as a block graph of
// the given size, newest sample at the right edge.
func renderGraph(values []float64, width, height int) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	window := values
	if len(window) > width {
		window = window[len(window)-width:]
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Right-align so the newest sample hugs the right edge.
	offset := width - len(window)
	for x, val := range window {
		h := int((val / 100.0) * float64(height))
		if h > height {
			h = height
		}
		for y := 0; y < h; y++ {
			grid[height-1-y][offset+x] = '█'
		}
	}

	var sb strings.Builder
	for i, row := range grid {
		sb.WriteString(BarStyle.Render(string(row)))
		if i < len(grid)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
