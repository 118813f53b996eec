// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupTestConfig sets TAILOR_CFG to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	assert.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("TAILOR_CFG", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Contains(t, cfg.Data, "lines")
				assert.Equal(t, 25, cfg.Data["lines"])
				assert.Equal(t, "gtail", cfg.Data["tail_cmd"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				defaults, ok := cfg.Data["defaults"].(map[string]interface{})
				assert.True(t, ok, "defaults should be a map")
				assert.Equal(t, 50, defaults["lines"])
			},
		},
		{
			name:     "missing file",
			testFile: "does-not-exist.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestGetString(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	_, err := Load()
	assert.NoError(t, err)

	s, err := GetString("defaults.tail_cmd")
	assert.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/gtail", s)

	// Missing key with a default falls back.
	s, err = GetString("defaults.missing", "tail")
	assert.NoError(t, err)
	assert.Equal(t, "tail", s)

	// Missing key without a default errors.
	_, err = GetString("defaults.missing")
	assert.Error(t, err)

	// Non-string value errors.
	_, err = GetString("defaults.lines")
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	cleanup := setupTestConfig(t, "simple.yaml")
	defer cleanup()

	_, err := Load()
	assert.NoError(t, err)

	n, err := GetInt("lines")
	assert.NoError(t, err)
	assert.Equal(t, 25, n)

	n, err = GetInt("missing", 10)
	assert.NoError(t, err)
	assert.Equal(t, 10, n)

	_, err = GetInt("tail_cmd")
	assert.Error(t, err)
}
