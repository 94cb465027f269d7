package config

// ProfileConfiguration defines the user-configurable settings for
// HostPulse.
type ProfileConfiguration struct {
	Theme           string             `json:"theme"`
	ColumnWidths    map[string]float64 `json:"column_widths"`
	RefreshInterval int                `json:"refresh_interval"` // In milliseconds
	HistoryLength   int                `json:"history_length"`
	TopProcesses    int                `json:"top_processes"`
	IPEndpoint      string             `json:"ip_endpoint"`
}

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() *ProfileConfiguration {
	return &ProfileConfiguration{
		Theme: "deep-sea",
		ColumnWidths: map[string]float64{
			"cpu":     0.32,
			"process": 0.36,
			"system":  0.32,
		},
		RefreshInterval: 1500,
		HistoryLength:   60,
		TopProcesses:    10,
		IPEndpoint:      "https://ipinfo.io/json",
	}
}

// Validate normalizes out-of-range values back to their defaults.
// Values nobody could have meant (negative intervals, zero-length
// history) are treated as absent rather than errors so a hand-edited
// profile never bricks startup.
func (c *ProfileConfiguration) Validate() error {
	def := DefaultConfig()
	if c.RefreshInterval < 100 {
		c.RefreshInterval = def.RefreshInterval
	}
	if c.HistoryLength <= 0 {
		c.HistoryLength = def.HistoryLength
	}
	if c.TopProcesses <= 0 {
		c.TopProcesses = def.TopProcesses
	}
	if c.IPEndpoint == "" {
		c.IPEndpoint = def.IPEndpoint
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if len(c.ColumnWidths) == 0 {
		c.ColumnWidths = def.ColumnWidths
	}
	return nil
}
