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

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"version": "2.0.0", "mode": "tui"},
		"rules":   map[string]any{"valid_regions": "X,Y", "regions_file": "regions.properties"},
		"server":  map[string]any{"http_address": ":9090", "request_timeout": "10s"},
		"adapter": map[string]any{"http_address": "validator:9090", "request_timeout": 1000000000},
		"log":     map[string]any{"level": "error", "file": "client.log"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "tui", cfg.App.Mode)
	assert.Equal(t, "X,Y", cfg.Rules.Regions)
	assert.Equal(t, "regions.properties", cfg.Rules.RegionsFile)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "validator:9090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "client.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `500`, want: 500},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(data))
}
