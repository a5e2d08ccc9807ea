// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func builderWithArgs(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := builderWithArgs().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := builderWithArgs()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := builderWithArgs()
	b.configs = append(b.configs,
		&StructuredConfig{BackendURL: "http://env:1", Workers: Workers{BatchSize: 10}},
		&StructuredConfig{BackendURL: "http://flag:2"},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flag:2", cfg.BackendURL)
	assert.Equal(t, 10, cfg.Workers.BatchSize, "zero fields must not override")
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	setEnvVars(t, map[string]string{"DOTENV_PATH": filepath.Join(t.TempDir(), "absent.env")})

	b := builderWithArgs().withDotEnv()
	assert.NoError(t, b.err)
}

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("BACKEND_URL=http://from-dotenv:9000\n"), 0o600))
	setEnvVars(t, map[string]string{"DOTENV_PATH": p})
	t.Cleanup(func() { _ = os.Unsetenv("BACKEND_URL") })

	b := builderWithArgs().withDotEnv().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://from-dotenv:9000", b.configs[0].BackendURL)
}

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := builderWithArgs("-batch-size", "many").withFlags()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := builderWithArgs()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.BackendURL = "http://json:1"
	payload.Workers.PollInterval = Duration(9 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := builderWithArgs()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "http://json:1", b.configs[2].BackendURL)
	assert.Equal(t, 9*time.Second, b.configs[2].Workers.PollInterval)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := builderWithArgs()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_SkippedAfterEarlierError(t *testing.T) {
	b := builderWithArgs()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.ErrorIs(t, b.err, assert.AnError)
	assert.Len(t, b.configs, 1)
}

func TestFullChain_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"DOTENV_PATH":           filepath.Join(t.TempDir(), "none.env"),
		"BACKEND_URL":           "http://env:1",
		"WORKERS_POLL_INTERVAL": "6s",
	})

	cfg, err := builderWithArgs("-b", "http://flag:2").
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://flag:2", cfg.BackendURL)
	assert.Equal(t, 6*time.Second, cfg.Workers.PollInterval)
}
