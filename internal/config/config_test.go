package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "twoway.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
program: reverse
log_level: debug
max_steps: "50"
color: false
http:
  addr: ":9090"
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "reverse", cfg.Program)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50, cfg.MaxSteps, "weakly typed scalar")
	assert.False(t, cfg.Color)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "stdio", cfg.MCP.Transport, "untouched keys keep defaults")
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Bad YAML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "program: [unclosed"), true)
		assert.Error(t, err)
	})

	t.Run("Unknown Key", func(t *testing.T) {
		_, err := Load(writeConfig(t, "programme: double\n"), true)
		assert.ErrorContains(t, err, "programme")
	})
}

func TestDecode_ToolArguments(t *testing.T) {
	var args struct {
		Input string `mapstructure:"input"`
		Count int    `mapstructure:"count"`
	}
	require.NoError(t, Decode(map[string]any{"input": "AB", "count": float64(3)}, &args))
	assert.Equal(t, "AB", args.Input)
	assert.Equal(t, 3, args.Count)
}
