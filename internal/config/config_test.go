package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvNodes, EnvEdges, EnvLogLevel, EnvLogFormat, EnvAlgorithm, EnvLabelPolicy, EnvDOT} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "lvpath.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "nodes: data/n.txt\nalgorithm: dijkstra\ndot: true\n")
	cfg, err := Load(p, true)
	require.NoError(t, err)
	assert.Equal(t, "data/n.txt", cfg.Nodes)
	assert.Equal(t, "edges.txt", cfg.Edges)
	assert.Equal(t, "dijkstra", cfg.Algorithm)
	assert.True(t, cfg.DOT)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "nodes: file.txt\nedges: file-edges.txt\nlog_level: warn\n")
	t.Setenv(EnvNodes, "env.txt")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := Load(p, true, func(c *Config) { c.Nodes = "flag.txt" })
	require.NoError(t, err)
	assert.Equal(t, "flag.txt", cfg.Nodes)       // flag beats env
	assert.Equal(t, "debug", cfg.LogLevel)       // env beats file
	assert.Equal(t, "file-edges.txt", cfg.Edges) // file beats default
	assert.Equal(t, "text", cfg.LogFormat)       // default
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]struct {
		file string
		env  map[string]string
	}{
		"bad yaml":      {file: "nodes: [unclosed\n"},
		"bad algorithm": {file: "algorithm: astar\n"},
		"bad policy":    {env: map[string]string{EnvLabelPolicy: "random"}},
		"bad format":    {env: map[string]string{EnvLogFormat: "xml"}},
		"bad dot":       {env: map[string]string{EnvDOT: "maybe"}},
		"empty nodes":   {file: "nodes: \"\"\n"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			p := writeFile(t, tc.file)
			_, err := Load(p, true)
			assert.Error(t, err)
		})
	}
}

func TestValidate_MessageNamesField(t *testing.T) {
	cfg := Default()
	cfg.Algorithm = "astar"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Algorithm")
	assert.Contains(t, err.Error(), "astar")
}
