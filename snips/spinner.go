// Package snips provides small terminal widgets: a braille spinner for
// indeterminate waits and a fixed-width progress bar. Both draw in place
// with carriage returns and clean up after themselves, so they compose with
// normal log output before and after.
package snips

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const frameInterval = 80 * time.Millisecond

const fallbackWidth = 80

// Spinner animates one terminal line until stopped. Start and Stop pair;
// Stop blocks until the line is cleared, so callers can print immediately
// after.
type Spinner struct {
	out  *termenv.Output
	mu   sync.Mutex
	quit chan struct{}
	done chan struct{}
}

// NewSpinner returns a spinner writing to stdout.
func NewSpinner() *Spinner {
	return &Spinner{out: termenv.NewOutput(os.Stdout)}
}

// Start begins animating beside message. Messages wider than the terminal
// are truncated with an ellipsis. Starting an already running spinner is a
// no-op.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quit != nil {
		return
	}
	s.quit = make(chan struct{})
	s.done = make(chan struct{})

	avail := s.width() - 3
	if avail < 1 {
		avail = 1
	}
	go s.spin(truncate.StringWithTail(message, uint(avail), "…"), s.quit, s.done)
}

// Stop halts the animation and clears the spinner line. Stopping a stopped
// spinner is a no-op, and the spinner can be started again afterwards.
func (s *Spinner) Stop() {
	s.mu.Lock()
	quit, done := s.quit, s.done
	s.quit, s.done = nil, nil
	s.mu.Unlock()
	if quit == nil {
		return
	}
	close(quit)
	<-done
}

func (s *Spinner) spin(message string, quit, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for i := 0; ; i = (i + 1) % len(spinnerFrames) {
		frame := s.out.String(spinnerFrames[i]).Foreground(s.out.Color("6"))
		fmt.Fprintf(s.out, "\r%s %s ", frame, message)
		select {
		case <-quit:
			width := runewidth.StringWidth(spinnerFrames[i]+" "+message) + 2
			fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", width))
			return
		case <-ticker.C:
		}
	}
}

// width reports the terminal width, or a fallback when the output is not a
// terminal.
func (s *Spinner) width() int {
	if tty := s.out.TTY(); tty != nil {
		if w, _, err := term.GetSize(int(tty.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}
