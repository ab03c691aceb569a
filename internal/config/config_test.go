package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
session {
  small_blind    = 25
  big_blind      = 50
  starting_stack = 5000
  hands          = 500
  seed           = 42
}

player "hero" {
  strategy = "chart"
}

player "villain" {
  strategy = "rand"
  stack    = 3000
}
`

func TestParseSessionConfig(t *testing.T) {
	cfg, err := ParseSessionConfig([]byte(sampleConfig), "test.hcl")
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Session.SmallBlind)
	assert.Equal(t, 50, cfg.Session.BigBlind)
	assert.Equal(t, 5000, cfg.Session.StartingStack)
	assert.Equal(t, 500, cfg.Session.Hands)
	assert.Equal(t, int64(42), cfg.Session.Seed)

	require.Len(t, cfg.Players, 2)
	assert.Equal(t, []string{"hero", "villain"}, cfg.Names())
	assert.Equal(t, "chart", cfg.Players[0].Strategy)
	assert.Equal(t, []int{5000, 3000}, cfg.Stacks())
}

func TestParseAppliesDefaults(t *testing.T) {
	src := `
session {}

player "a" {}
player "b" {}
`
	cfg, err := ParseSessionConfig([]byte(src), "test.hcl")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Session.SmallBlind)
	assert.Equal(t, 20, cfg.Session.BigBlind)
	assert.Equal(t, 1000, cfg.Session.StartingStack)
	assert.Equal(t, 100, cfg.Session.Hands)
	assert.Equal(t, "call", cfg.Players[0].Strategy)
}

func TestParseRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", `session { small_blind = `},
		{"one player", `session {}` + "\n" + `player "solo" {}`},
		{"unknown strategy", `session {}` + "\n" + `player "a" { strategy = "gto" }` + "\n" + `player "b" {}`},
		{"inverted blinds", "session {\n  small_blind = 50\n  big_blind = 25\n}\n" + `player "a" {}` + "\n" + `player "b" {}`},
		{"duplicate names", `session {}` + "\n" + `player "a" {}` + "\n" + `player "a" {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionConfig([]byte(tt.src), "test.hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadSessionConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSessionConfig(), cfg)
}

func TestLoadSessionConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := LoadSessionConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Session.SmallBlind)
	require.Len(t, cfg.Players, 2)
}
