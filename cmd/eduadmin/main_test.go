package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduadmin/internal/config"
	"eduadmin/internal/eventbus"
)

func TestWithOverridesLeavesStoredConfigAlone(t *testing.T) {
	stored := config.DefaultConfig()
	stored.BaseURL = "https://learn.example.com"
	stored.Username = "admin"

	cfg := withOverrides(stored, "http://127.0.0.1:8000", "auditor")

	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	assert.Equal(t, "auditor", cfg.Username)
	assert.Equal(t, "https://learn.example.com", stored.BaseURL)
	assert.Equal(t, "admin", stored.Username)
}

func TestRowsPerPageSavedWithoutFlagOverrides(t *testing.T) {
	svc := config.NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"))
	stored := config.DefaultConfig()
	stored.BaseURL = "https://learn.example.com"
	require.NoError(t, svc.Save(stored))

	cfg := withOverrides(stored, "http://127.0.0.1:8000", "")

	bus := eventbus.New()
	subscribe(bus, svc, stored)
	bus.Publish(eventbus.ConfigChangedEvent{RowsPerPage: 20})
	bus.Close()

	saved, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, 20, saved.UISettings.RowsPerPage)
	assert.Equal(t, "https://learn.example.com", saved.BaseURL)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
}
