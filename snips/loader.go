package snips

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const loaderWidth = 30

var loaderFillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

// Loader renders a fixed-width progress bar in place. Callers drive it with
// SetAmount as work progresses and Clear when done.
type Loader struct {
	out    *termenv.Output
	amount int
}

// NewLoader returns a bar writing to stdout.
func NewLoader() *Loader {
	return &Loader{out: termenv.NewOutput(os.Stdout)}
}

// SetAmount redraws the bar at amount percent, clamped to 0..100.
func (l *Loader) SetAmount(amount int) {
	if amount > 100 {
		amount = 100
	}
	if amount < 0 {
		amount = 0
	}
	l.amount = amount

	filled := int(math.Round(float64(amount) / 100 * loaderWidth))
	bar := loaderFillStyle.Render(strings.Repeat("█", filled)) + strings.Repeat(" ", loaderWidth-filled)
	fmt.Fprintf(l.out, "\r[%s] %d/100", bar, amount)
}

// Amount returns the last value the bar was drawn at.
func (l *Loader) Amount() int {
	return l.amount
}

// Clear erases the bar line.
func (l *Loader) Clear() {
	fmt.Fprintf(l.out, "\r%s\r", strings.Repeat(" ", loaderWidth+10))
}
