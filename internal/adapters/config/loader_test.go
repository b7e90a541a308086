package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go.trai.ch/texd/internal/adapters/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "texd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
typesetter: ["tex2svg", "--font", "TeX"]
rasterizer: ["resvg", "--resources-dir", "/tmp"]
preamble: "macros.tex"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"tex2svg", "--font", "TeX"}, cfg.Typesetter)
	require.Equal(t, []string{"resvg", "--resources-dir", "/tmp"}, cfg.Rasterizer)
	require.Equal(t, "macros.tex", cfg.Preamble)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `preamble: "macros.tex"`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Default().Typesetter, cfg.Typesetter)
	require.Equal(t, config.Default().Rasterizer, cfg.Rasterizer)
	require.Equal(t, "macros.tex", cfg.Preamble)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "typesetter: [unterminated")

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_EmptyCommandRejected(t *testing.T) {
	path := writeConfig(t, "typesetter: []")

	_, err := config.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "typesetter")
}
