// ABOUTME: Tests for config loading, merging and validation
// ABOUTME: Uses temp directories for isolated TOML and YAML file tests

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/rio-go/pkg/event"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, event.WindowSize{Lines: 24, Cols: 80, CellWidth: 8, CellHeight: 16}, cfg.WindowSize())
	assert.Equal(t, 530*time.Millisecond, cfg.Cursor.BlinkInterval.Std())
	assert.Equal(t, 60, cfg.FPS)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Config{Shell: "/bin/zsh", FPS: 30, Env: map[string]string{"A": "1", "B": "2"}}
	fps := 120
	project := &fileConfig{FPS: &fps, Env: map[string]string{"B": "override", "C": "3"}, Window: Window{Cols: 132}}

	result := merge(global, project)

	assert.Equal(t, "/bin/zsh", result.Shell)
	assert.Equal(t, 120, result.FPS)
	assert.Equal(t, uint16(132), result.Window.Cols)
	assert.Equal(t, map[string]string{"A": "1", "B": "override", "C": "3"}, result.Env)
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, global.Env, "base must not be mutated")
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	require.NotNil(t, merge(nil, nil))
	base := Default()
	assert.Same(t, base, merge(base, nil))
}

func TestMerge_ExplicitZeroOverridesDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, file, content string
	}{
		{"toml", "config.toml", "fps = 0\n[bell]\nvisual = false\nduration = \"0s\"\n[cursor]\nblinking = false\nblink-timeout = \"0s\"\n"},
		{"yaml", "config.yaml", "fps: 0\nbell:\n  visual: false\n  duration: 0s\ncursor:\n  blinking: false\n  blink-timeout: 0s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base := Default()
			base.Cursor.Blinking = true

			file, err := loadFile(writeFile(t, t.TempDir(), tt.file, tt.content))
			require.NoError(t, err)
			cfg := merge(base, file)

			assert.False(t, cfg.Bell.Visual)
			assert.Zero(t, cfg.Bell.Duration)
			assert.False(t, cfg.Cursor.Blinking)
			assert.Zero(t, cfg.Cursor.BlinkTimeout)
			assert.Equal(t, 0, cfg.FPS)
			assert.Equal(t, 530*time.Millisecond, cfg.Cursor.BlinkInterval.Std(), "absent key keeps base")
			assert.True(t, base.Bell.Visual, "base must not be mutated")
		})
	}
}

func TestLoad_DisablesVisualBellAndBlinkTimeout(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.toml", "[bell]\nvisual = false\n\n[cursor]\nblink-timeout = \"0s\"\n")

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)
	assert.False(t, cfg.Bell.Visual)
	assert.Zero(t, cfg.Cursor.BlinkTimeout.Std())
}

func TestLoadFile_TOML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.toml", `
shell = "/bin/bash"
args = ["-l"]
fps = 30

[window]
lines = 40
cols = 120
cell-width = 9
cell-height = 18

[cursor]
blinking = true
blink-interval = "250ms"

[palette]
1 = "#ff0000"

[log]
level = "debug"
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{"-l"}, cfg.Args)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, event.WindowSize{Lines: 40, Cols: 120, CellWidth: 9, CellHeight: 18}, cfg.WindowSize())
	assert.True(t, cfg.Cursor.Blinking)
	assert.Equal(t, 250*time.Millisecond, cfg.Cursor.BlinkInterval.Std())
	assert.Equal(t, 5*time.Second, cfg.Cursor.BlinkTimeout.Std(), "default kept")
	assert.Equal(t, "debug", cfg.Log.Level)

	overrides, err := cfg.PaletteOverrides()
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "#ff0000"}, overrides)
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.yaml", `
shell: /usr/bin/fish
window:
  lines: 50
bell:
  duration: 1s
env:
  TERM: xterm-256color
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, uint16(50), cfg.Window.Lines)
	assert.Equal(t, uint16(80), cfg.Window.Cols)
	assert.Equal(t, time.Second, cfg.Bell.Duration.Std())
	assert.Equal(t, "xterm-256color", cfg.Env["TERM"])
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := loadFile(filepath.Join(dir, "missing.toml"))
	assert.True(t, os.IsNotExist(err))

	_, err = loadFile(writeFile(t, dir, "config.json", `{}`))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = loadFile(writeFile(t, dir, "bad.toml", `fps = "fast"`))
	assert.Error(t, err)

	_, err = loadFile(writeFile(t, dir, "bad-duration.yaml", "bell:\n  duration: soon\n"))
	assert.Error(t, err)
}

func TestLoadAll_ProjectOverridesGlobal(t *testing.T) {
	// Not parallel: HOME is process-wide.
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvShell, "")

	writeFile(t, home, ".rio-go/config.toml", "shell = \"/bin/global\"\nfps = 30\n")
	project := t.TempDir()
	writeFile(t, project, ".rio-go/config.yml", "fps: 90\n")

	cfg, err := LoadAll(project)
	require.NoError(t, err)
	assert.Equal(t, "/bin/global", cfg.Shell)
	assert.Equal(t, 90, cfg.FPS)
}

func TestLoad_EnvShellOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvShell, "/bin/dash")

	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/bin/dash", cfg.Shell)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty shell", func(c *Config) { c.Shell = "" }},
		{"zero lines", func(c *Config) { c.Window.Lines = 0 }},
		{"fps too high", func(c *Config) { c.FPS = 1000 }},
		{"negative duration", func(c *Config) { c.Bell.Duration = Duration(-time.Second) }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad palette key", func(c *Config) { c.Palette = map[string]string{"red": "#ff0000"} }},
		{"bad palette color", func(c *Config) { c.Palette = map[string]string{"1": "red"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestDuration_Text(t *testing.T) {
	t.Parallel()

	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.Std())

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))

	assert.Error(t, d.UnmarshalText([]byte("never")))
}
