// ABOUTME: PTY device abstraction and the creack/pty-backed implementation
// ABOUTME: Spawn starts the shell on a new pseudo-terminal sized from a WindowSize

package pty

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"

	"github.com/creack/pty"

	"github.com/mauromedda/rio-go/pkg/event"
)

// Device is the master side of a pseudo-terminal.
type Device interface {
	io.ReadWriteCloser
	Resize(size event.WindowSize) error
}

// SpawnConfig describes the child process.
type SpawnConfig struct {
	Shell string
	Args  []string
	Env   map[string]string
	Dir   string
	Size  event.WindowSize
}

type ptyDevice struct {
	f *os.File
}

func (d ptyDevice) Read(p []byte) (int, error)  { return d.f.Read(p) }
func (d ptyDevice) Write(p []byte) (int, error) { return d.f.Write(p) }
func (d ptyDevice) Close() error                { return d.f.Close() }

func (d ptyDevice) Resize(size event.WindowSize) error {
	if err := pty.Setsize(d.f, winsize(size)); err != nil {
		return fmt.Errorf("setting pty size: %w", err)
	}
	return nil
}

func winsize(size event.WindowSize) *pty.Winsize {
	return &pty.Winsize{
		Rows: size.Lines,
		Cols: size.Cols,
		X:    clamp(size.TextAreaWidth()),
		Y:    clamp(size.TextAreaHeight()),
	}
}

func clamp(v int) uint16 {
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}

// Spawn starts cfg.Shell on a new pseudo-terminal and returns a session
// bound to it.
func Spawn(cfg SpawnConfig) (*Session, error) {
	cmd := exec.Command(cfg.Shell, cfg.Args...)
	cmd.Dir = cfg.Dir
	cmd.Env = append(os.Environ(), "TERM=xterm-256color", "COLORTERM=truecolor")

	keys := make([]string, 0, len(cfg.Env))
	for k := range cfg.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Env = append(cmd.Env, k+"="+cfg.Env[k])
	}

	f, err := pty.StartWithSize(cmd, winsize(cfg.Size))
	if err != nil {
		return nil, fmt.Errorf("starting %s: %w", cfg.Shell, err)
	}
	return NewSession(ptyDevice{f: f}, cmd.Wait), nil
}
