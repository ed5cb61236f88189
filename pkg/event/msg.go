// ABOUTME: Msg vocabulary consumed by the PTY writer actor
// ABOUTME: Closed set of variants: Input, Shutdown, Resize

package event

import "fmt"

// Msg is an instruction for the PTY writer. The set of implementations is
// closed: Input, Shutdown and Resize.
type Msg interface {
	fmt.Stringer
	// Kind returns the variant tag.
	Kind() string
	isMsg()
}

// Input carries bytes that should be written to the PTY verbatim.
// Notifier never produces an Input with an empty payload.
type Input struct {
	Bytes []byte
}

// Shutdown tells the PTY actor to stop its loop and release the device.
type Shutdown struct{}

// Resize instructs the PTY actor to apply a new window size.
type Resize struct {
	Size WindowSize
}

func (Input) isMsg()    {}
func (Shutdown) isMsg() {}
func (Resize) isMsg()   {}

func (Input) Kind() string    { return "Input" }
func (Shutdown) Kind() string { return "Shutdown" }
func (Resize) Kind() string   { return "Resize" }

func (m Input) String() string  { return fmt.Sprintf("Input(%q)", m.Bytes) }
func (Shutdown) String() string { return "Shutdown" }
func (m Resize) String() string { return fmt.Sprintf("Resize(%s)", m.Size) }
