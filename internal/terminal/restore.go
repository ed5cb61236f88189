// ABOUTME: RestoreOnPanic recovers from panics, restores the host terminal, and prints the stack trace.
// ABOUTME: RecoverGoroutine does the same for actor goroutines without exiting the process.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	riolog "github.com/mauromedda/rio-go/internal/log"
)

// RestoreOnPanic should be deferred at the top of main. On panic it shows
// the cursor, exits raw mode, prints the panic and stack, and exits 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of actor goroutines that
// run while the terminal is in raw mode. It does not exit, so the main
// goroutine can still shut the session down.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)
	riolog.Error("goroutine panic: %v\n%s", r, debug.Stack())
}

func restore(t Terminal) {
	// Best-effort: show cursor and exit raw mode.
	_, _ = t.Write([]byte("\033[?25h"))
	_ = t.ExitRawMode()
}
