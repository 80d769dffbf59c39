package libset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type palette struct {
	Accent string `json:"accent" toml:"accent" yaml:"accent"`
	Dark   bool   `json:"dark" toml:"dark" yaml:"dark"`
}

func TestSetGetRoundTrip(t *testing.T) {
	cfg := newTestConfig(t)
	want := palette{Accent: "#7a7af9", Dark: true}

	tests := []struct {
		format Format
		set    func(key string, v any) error
		get    func(key string, v any) error
	}{
		{JSON, cfg.SetJSON, cfg.GetJSON},
		{TOML, cfg.SetTOML, cfg.GetTOML},
		{YAML, cfg.SetYAML, cfg.GetYAML},
		{JSON5, cfg.SetJSON5, cfg.GetJSON5},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			require.NoError(t, tt.set("colors", want))

			path, err := cfg.Path("colors", tt.format)
			require.NoError(t, err)
			assert.FileExists(t, path)

			var got palette
			require.NoError(t, tt.get("colors", &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestSetRejectsUnsafeKey(t *testing.T) {
	cfg := newTestConfig(t)

	err := cfg.SetJSON("../escape", palette{})
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestSetEncodeFailureLeavesFileIntact(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, cfg.SetJSON("colors", palette{Accent: "#7a7af9"}))

	path, err := cfg.Path("colors", JSON)
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// Channels are not serializable to JSON; the write must fail before
	// touching the filesystem.
	err = cfg.SetJSON("colors", map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSetLeavesNoTempFiles(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, cfg.SetJSON("colors", palette{Accent: "#7a7af9"}))
	require.NoError(t, cfg.SetJSON("colors", palette{Accent: "#000000"}))

	entries, err := os.ReadDir(cfg.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "colors.json", entries[0].Name())
}

func TestSetRecreatesRemovedDirectory(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, os.RemoveAll(cfg.Dir()))

	require.NoError(t, cfg.SetJSON("colors", palette{Accent: "#7a7af9"}))
	assert.FileExists(t, filepath.Join(cfg.Dir(), "colors.json"))
}

func TestPlainRoundTrip(t *testing.T) {
	cfg := newTestConfig(t)

	require.NoError(t, cfg.SetPlain("motd", "hello\nworld"))

	got, err := cfg.GetPlain("motd")
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", got)

	// Plain items carry no extension.
	entries, err := os.ReadDir(cfg.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, strings.Contains(entries[0].Name(), "."))
}

func TestGetPlainMissing(t *testing.T) {
	cfg := newTestConfig(t)

	_, err := cfg.GetPlain("motd")
	require.ErrorIs(t, err, ErrNotFound)
}
