package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/hostpulse/internal/config"
	"github.com/google/hostpulse/internal/metrics"
	"github.com/google/hostpulse/internal/ui"
)

func main() {
	mockMode := flag.Bool("mock", false, "Run in mock mode with simulated data")
	configPath := flag.String("config", "", "Path to profile JSON (default: hostpulse.json)")
	flag.Parse()

	var cfg *config.ProfileConfiguration
	var err error
	if *configPath != "" {
		cfg, err = config.LoadConfig(*configPath)
	} else {
		cfg, err = config.LoadDefaultConfig()
	}
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
	}

	var provider metrics.Provider
	if *mockMode {
		log.Println("Starting in MOCK mode...")
		provider = &metrics.MockProvider{}
	} else {
		provider = &metrics.RealProvider{TopProcesses: cfg.TopProcesses}
	}

	if err := provider.Init(); err != nil {
		log.Fatalf("Failed to initialize metrics provider: %v", err)
	}
	defer provider.Shutdown()

	sampler := metrics.NewSampler(provider, metrics.SamplerOptions{
		Interval:      time.Duration(cfg.RefreshInterval) * time.Millisecond,
		HistoryLength: cfg.HistoryLength,
		IPEndpoint:    cfg.IPEndpoint,
	})

	// The sampler and its side-loops stop together when the UI exits;
	// an in-flight IP lookup is abandoned rather than awaited.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sampler.Run(ctx)

	root := ui.NewRootModel(sampler, cfg)

	p := tea.NewProgram(root, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running HostPulse: %v\n", err)
		os.Exit(1)
	}
}
