package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"eduadmin/internal/api"
	"eduadmin/internal/config"
	"eduadmin/internal/eventbus"
	"eduadmin/internal/ui"
)

func main() {
	// Parse command line arguments
	var baseURL, username, configPath string
	flag.StringVar(&baseURL, "url", "", "Portal base URL, e.g. https://learn.example.com")
	flag.StringVar(&username, "user", "", "Username to sign in with")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.Parse()

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	stored := loadOrCreateConfig(configSvc)
	cfg := withOverrides(stored, baseURL, username)

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Printf("Starting eduadmin against %s", cfg.BaseURL)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	client, err := api.New(cfg.BaseURL, cfg.Timeout())
	if err != nil {
		log.Printf("Invalid portal URL: %v", err)
		fmt.Fprintf(os.Stderr, "Invalid portal URL: %v\n", err)
		os.Exit(1)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()
	subscribe(bus, configSvc, stored)

	uiModel := ui.NewModel(cfg, ui.Options{
		Context:  ctx,
		Bus:      bus,
		Portal:   client,
		BaseURL:  client.BaseURL(),
		Username: cfg.Username,
		Password: os.Getenv("EDUADMIN_PASSWORD"),
	})

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Run the UI
	log.Printf("Starting UI...")
	final, err := p.Run()
	if err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	if m, ok := final.(*ui.Model); ok && m.SignedIn() {
		logoutCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := client.Logout(logoutCtx); err != nil {
			log.Printf("Logout failed: %v", err)
		}
	}
}

// withOverrides returns a copy of the stored config with the command line
// values applied. Only the stored config is ever saved.
func withOverrides(stored *config.Config, baseURL, username string) *config.Config {
	cfg := *stored
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if username != "" {
		cfg.Username = username
	}
	return &cfg
}

// subscribe wires the host-level listeners: persistence of the stored config
// and the audit log
func subscribe(bus eventbus.EventBus, configSvc config.ConfigService, cfg *config.Config) {
	save := func() {
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		} else {
			log.Printf("Config saved to %s", configSvc.Path())
		}
	}

	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.UISettings.RowsPerPage = event.RowsPerPage
			save()
		}
	})

	bus.Subscribe(eventbus.EventSessionStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SessionStartedEvent); ok && event.Username != cfg.Username {
			cfg.Username = event.Username
			save()
		}
	})

	bus.Subscribe(eventbus.EventSelectionSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionSavedEvent); ok {
			log.Printf("Audit: dialog %s saved %d %s items", event.DialogID, event.Count, event.Kind)
		}
	})

	bus.Subscribe(eventbus.EventSelectionCancelled, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionCancelledEvent); ok {
			log.Printf("Audit: dialog %s (%s) cancelled", event.DialogID, event.Kind)
		}
	})

	bus.Subscribe(eventbus.EventAssignmentCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AssignmentCompletedEvent); ok {
			log.Printf("Audit: assignment finished: assigned=%d already=%d failed=%d",
				event.Successful, event.AlreadyAssigned, event.Failed)
		}
	})

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error event: %s: %v", event.Message, event.Err)
		}
	})
}

// loadOrCreateConfig loads the config file, writing defaults when there is none
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	if _, err := os.Stat(configSvc.Path()); err != nil {
		cfg := config.DefaultConfig()
		if err := configSvc.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Could not create config %s: %v\n", configSvc.Path(), err)
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}
