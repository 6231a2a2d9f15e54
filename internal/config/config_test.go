package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := Default()
	assert.Equal(t, 80, s.Columns)
	assert.Equal(t, 24, s.Lines)
	assert.Equal(t, 1000, s.MaxHistory)
	assert.Equal(t, "default", s.DefaultFg)
	assert.Equal(t, "default", s.DefaultBg)
	assert.False(t, s.Debug)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.yaml")
	want := &Settings{
		Columns:    132,
		Lines:      43,
		MaxHistory: 500,
		DefaultFg:  "white",
		DefaultBg:  "black",
		Debug:      true,
	}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: 120\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, s.Columns)
	assert.Equal(t, 24, s.Lines, "unset fields keep their defaults")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero columns", "columns: 0\n"},
		{"negative lines", "lines: -1\n"},
		{"negative history", "max_history: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [not an int\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
