// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSONFile(t, `{
		"app": {"log_level": "debug", "log_file": "c.log", "hash_cost": 10},
		"storage": {"db": {"dsn": "file:s.db"}},
		"server": {"http_address": ":3000", "request_timeout": "15s", "shutdown_timeout": 2000000000},
		"adapter": {"http_address": "localhost:3000", "request_timeout": "10s"},
		"workers": {"poll_interval": "5s", "batch_size": 10, "highlight_duration": "2s"},
		"backend_url": "http://backend:8080"
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "c.log", cfg.App.LogFile)
	assert.Equal(t, 10, cfg.App.HashCost)
	assert.Equal(t, "file:s.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 10, cfg.Workers.BatchSize)
	assert.Equal(t, 2*time.Second, cfg.Workers.HighlightDuration)
	assert.Equal(t, "http://backend:8080", cfg.BackendURL)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeJSONFile(t, `{"app": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeJSONFile(t, `{"workers": {"poll_interval": "often"}}`))
	require.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := Duration(1500 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(out))
}
