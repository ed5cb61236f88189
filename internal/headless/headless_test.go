// ABOUTME: Tests for the pass-through front end with a virtual host terminal and pipe-backed PTY
// ABOUTME: Checks raw-mode bracketing, input relay, resize forwarding and shutdown on EOF

package headless

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/muesli/cancelreader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/rio-go/internal/pty"
	"github.com/mauromedda/rio-go/internal/terminal"
	"github.com/mauromedda/rio-go/pkg/event"
	"github.com/mauromedda/rio-go/pkg/mailbox"
)

type pipeDevice struct {
	out *io.PipeReader

	mu      sync.Mutex
	input   bytes.Buffer
	resizes []event.WindowSize
}

func (d *pipeDevice) Read(p []byte) (int, error) { return d.out.Read(p) }
func (d *pipeDevice) Close() error                { return d.out.Close() }

func (d *pipeDevice) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.input.Write(p)
}

func (d *pipeDevice) Resize(size event.WindowSize) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resizes = append(d.resizes, size)
	return nil
}

var (
	initialSize = event.WindowSize{Lines: 24, Cols: 80, CellWidth: 8, CellHeight: 16}
	grownSize   = event.WindowSize{Lines: 50, Cols: 132, CellWidth: 8, CellHeight: 16}
)

func TestRun_RelaysUntilInputEOF(t *testing.T) {
	t.Parallel()

	childOut, childW := io.Pipe()
	dev := &pipeDevice{out: childOut}
	session := pty.NewSession(dev, nil)
	host := terminal.NewVirtualTerminal(initialSize)
	in, inW := io.Pipe()

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), session, host, in) }()

	_, err := childW.Write([]byte("prompt$ "))
	require.NoError(t, err)
	_, err = inW.Write([]byte("ls\n"))
	require.NoError(t, err)
	host.SetSize(grownSize)
	require.NoError(t, inW.Close())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("headless run did not stop")
	}

	dev.mu.Lock()
	defer dev.mu.Unlock()
	assert.Equal(t, "ls\n", dev.input.String())
	assert.Equal(t, []event.WindowSize{initialSize, grownSize}, dev.resizes)
	assert.Equal(t, "prompt$ ", host.Output())
	assert.False(t, host.IsRawMode())
	assert.Equal(t, 1, host.EnterCount())
	assert.Equal(t, 1, host.ExitCount())
}

type rawFailTerminal struct {
	*terminal.VirtualTerminal
}

func (rawFailTerminal) EnterRawMode() error { return errors.New("not a tty") }

func TestRun_RawModeFailure(t *testing.T) {
	t.Parallel()

	childOut, _ := io.Pipe()
	session := pty.NewSession(&pipeDevice{out: childOut}, nil)
	host := rawFailTerminal{terminal.NewVirtualTerminal(initialSize)}

	err := Run(context.Background(), session, host, strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a tty")
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestPumpInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      io.Reader
		want    []string
		wantErr bool
	}{
		{name: "eof shuts down", in: strings.NewReader("abc"), want: []string{`Input("abc")`, "Shutdown"}},
		{name: "canceled is quiet", in: errReader{err: cancelreader.ErrCanceled}, want: []string{}},
		{name: "read error", in: errReader{err: errors.New("boom")}, want: []string{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mb := mailbox.New[event.Msg]()
			err := pumpInput(tt.in, event.NewNotifier(mb))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			got := []string{}
			for {
				m, ok := mb.TryRecv()
				if !ok {
					break
				}
				got = append(got, m.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
