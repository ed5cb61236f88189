// ABOUTME: Configuration loading with global + project deep merge
// ABOUTME: TOML (go-toml/v2) or YAML (yaml.v3) chosen by file extension; defaults and validation

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	riolog "github.com/mauromedda/rio-go/internal/log"
	"github.com/mauromedda/rio-go/internal/xterm"
	"github.com/mauromedda/rio-go/pkg/event"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// EnvShell overrides the configured shell.
const EnvShell = "RIO_GO_SHELL"

// Config holds the merged configuration.
type Config struct {
	Shell   string            `toml:"shell,omitempty" yaml:"shell,omitempty"`
	Args    []string          `toml:"args,omitempty" yaml:"args,omitempty"`
	Env     map[string]string `toml:"env,omitempty" yaml:"env,omitempty"`
	Window  Window            `toml:"window,omitempty" yaml:"window,omitempty"`
	Cursor  Cursor            `toml:"cursor,omitempty" yaml:"cursor,omitempty"`
	FPS     int               `toml:"fps,omitempty" yaml:"fps,omitempty"`
	Bell    Bell              `toml:"bell,omitempty" yaml:"bell,omitempty"`
	Palette map[string]string `toml:"palette,omitempty" yaml:"palette,omitempty"`
	Log     Log               `toml:"log,omitempty" yaml:"log,omitempty"`
}

// Window is the initial geometry used before the host reports a size.
type Window struct {
	Lines      uint16 `toml:"lines,omitempty" yaml:"lines,omitempty"`
	Cols       uint16 `toml:"cols,omitempty" yaml:"cols,omitempty"`
	CellWidth  uint16 `toml:"cell-width,omitempty" yaml:"cell-width,omitempty"`
	CellHeight uint16 `toml:"cell-height,omitempty" yaml:"cell-height,omitempty"`
}

// Cursor controls cursor blinking.
type Cursor struct {
	Blinking      bool     `toml:"blinking,omitempty" yaml:"blinking,omitempty"`
	BlinkInterval Duration `toml:"blink-interval,omitempty" yaml:"blink-interval,omitempty"`
	BlinkTimeout  Duration `toml:"blink-timeout,omitempty" yaml:"blink-timeout,omitempty"`
}

// Bell controls the visual bell.
type Bell struct {
	Visual   bool     `toml:"visual,omitempty" yaml:"visual,omitempty"`
	Duration Duration `toml:"duration,omitempty" yaml:"duration,omitempty"`
}

// Log controls logging.
type Log struct {
	Level string `toml:"level,omitempty" yaml:"level,omitempty"`
	File  string `toml:"file,omitempty" yaml:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Shell: defaultShell(),
		Window: Window{
			Lines:      24,
			Cols:       80,
			CellWidth:  8,
			CellHeight: 16,
		},
		Cursor: Cursor{
			BlinkInterval: Duration(530 * time.Millisecond),
			BlinkTimeout:  Duration(5 * time.Second),
		},
		FPS: 60,
		Bell: Bell{
			Visual:   true,
			Duration: Duration(150 * time.Millisecond),
		},
		Log: Log{Level: "info"},
	}
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// WindowSize returns the configured initial geometry.
func (c *Config) WindowSize() event.WindowSize {
	return event.WindowSize{
		Lines:      c.Window.Lines,
		Cols:       c.Window.Cols,
		CellWidth:  c.Window.CellWidth,
		CellHeight: c.Window.CellHeight,
	}
}

// PaletteOverrides converts the palette table into index-keyed overrides.
func (c *Config) PaletteOverrides() (map[int]string, error) {
	out := make(map[int]string, len(c.Palette))
	for k, v := range c.Palette {
		idx, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("palette key %q: %w", k, err)
		}
		out[idx] = v
	}
	return out, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Shell == "" {
		return fmt.Errorf("%w: shell is empty", ErrInvalid)
	}
	if c.Window.Lines == 0 || c.Window.Cols == 0 {
		return fmt.Errorf("%w: window must have at least one line and column", ErrInvalid)
	}
	if c.FPS < 0 || c.FPS > 240 {
		return fmt.Errorf("%w: fps %d out of range [0, 240]", ErrInvalid, c.FPS)
	}
	if c.Cursor.BlinkInterval < 0 || c.Cursor.BlinkTimeout < 0 || c.Bell.Duration < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalid)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	overrides, err := c.PaletteOverrides()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := xterm.NewPalette(overrides); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Load reads an explicit config file on top of the defaults. An empty path
// falls back to LoadAll.
func Load(path, projectRoot string) (*Config, error) {
	if path == "" {
		return LoadAll(projectRoot)
	}
	file, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return finish(merge(Default(), file))
}

// LoadAll merges defaults, the global config and the project config.
// Project settings override global settings; missing files are skipped.
func LoadAll(projectRoot string) (*Config, error) {
	cfg := Default()
	for _, dir := range []string{GlobalDir(), ProjectDir(projectRoot)} {
		path := findConfig(dir)
		if path == "" {
			continue
		}
		file, err := loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		riolog.Debug("config: loaded %s", path)
		cfg = merge(cfg, file)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	if sh := os.Getenv(EnvShell); sh != "" {
		cfg.Shell = sh
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fileConfig is the decoded form of one config file. Pointer fields tell an
// explicit zero or false apart from an absent key.
type fileConfig struct {
	Shell   string            `toml:"shell" yaml:"shell"`
	Args    []string          `toml:"args" yaml:"args"`
	Env     map[string]string `toml:"env" yaml:"env"`
	Window  Window            `toml:"window" yaml:"window"`
	Cursor  fileCursor        `toml:"cursor" yaml:"cursor"`
	FPS     *int              `toml:"fps" yaml:"fps"`
	Bell    fileBell          `toml:"bell" yaml:"bell"`
	Palette map[string]string `toml:"palette" yaml:"palette"`
	Log     Log               `toml:"log" yaml:"log"`
}

type fileCursor struct {
	Blinking      *bool     `toml:"blinking" yaml:"blinking"`
	BlinkInterval *Duration `toml:"blink-interval" yaml:"blink-interval"`
	BlinkTimeout  *Duration `toml:"blink-timeout" yaml:"blink-timeout"`
}

type fileBell struct {
	Visual   *bool     `toml:"visual" yaml:"visual"`
	Duration *Duration `toml:"duration" yaml:"duration"`
}

// loadFile decodes path according to its extension.
func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalid, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}

// merge overlays the keys set in over onto base. Strings, lists and window
// dimensions count as set when non-empty; the remaining scalars whenever
// the key is present.
func merge(base *Config, over *fileConfig) *Config {
	if base == nil {
		base = &Config{}
	}
	if over == nil {
		return base
	}

	result := *base

	if over.Shell != "" {
		result.Shell = over.Shell
	}
	if len(over.Args) > 0 {
		result.Args = append([]string(nil), over.Args...)
	}
	result.Env = mergeMap(base.Env, over.Env)
	result.Palette = mergeMap(base.Palette, over.Palette)

	if over.Window.Lines != 0 {
		result.Window.Lines = over.Window.Lines
	}
	if over.Window.Cols != 0 {
		result.Window.Cols = over.Window.Cols
	}
	if over.Window.CellWidth != 0 {
		result.Window.CellWidth = over.Window.CellWidth
	}
	if over.Window.CellHeight != 0 {
		result.Window.CellHeight = over.Window.CellHeight
	}

	setIf(&result.Cursor.Blinking, over.Cursor.Blinking)
	setIf(&result.Cursor.BlinkInterval, over.Cursor.BlinkInterval)
	setIf(&result.Cursor.BlinkTimeout, over.Cursor.BlinkTimeout)
	setIf(&result.FPS, over.FPS)
	setIf(&result.Bell.Visual, over.Bell.Visual)
	setIf(&result.Bell.Duration, over.Bell.Duration)

	if over.Log.Level != "" {
		result.Log.Level = over.Log.Level
	}
	if over.Log.File != "" {
		result.Log.File = over.Log.File
	}

	return &result
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func mergeMap(base, over map[string]string) map[string]string {
	if len(base) == 0 && len(over) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}
