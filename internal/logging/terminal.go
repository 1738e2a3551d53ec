package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const (
	messagePrefix = "trackr:"
	warningLabel  = "WARNING"
)

// Terminal prints operator-facing messages. These are distinct from the
// structured log; they carry a fixed prefix and may be printed once only.
type Terminal struct {
	out       io.Writer
	highlight lipgloss.Style
	warn      lipgloss.Style

	mu   sync.Mutex
	seen map[string]struct{}
}

// NewTerminal creates a printer writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out:       out,
		highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		seen:      make(map[string]struct{}),
	}
}

// Highlight styles an identity or host for display.
func (t *Terminal) Highlight(s string) string {
	return t.highlight.Render(s)
}

// Log prints an informational message.
func (t *Terminal) Log(format string, args ...any) {
	t.print(fmt.Sprintf(format, args...), false)
}

// Warn prints a warning.
func (t *Terminal) Warn(format string, args ...any) {
	t.print(fmt.Sprintf(format, args...), true)
}

// LogOnce prints an informational message unless the same text was already printed.
func (t *Terminal) LogOnce(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if t.markSeen(msg) {
		t.print(msg, false)
	}
}

// WarnOnce prints a warning unless the same text was already printed.
func (t *Terminal) WarnOnce(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if t.markSeen(msg) {
		t.print(msg, true)
	}
}

func (t *Terminal) markSeen(msg string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.seen[msg]; ok {
		return false
	}
	t.seen[msg] = struct{}{}
	return true
}

func (t *Terminal) print(msg string, warning bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if warning {
		fmt.Fprintf(t.out, "%s %s %s\n", messagePrefix, t.warn.Render(warningLabel), msg)
		return
	}
	fmt.Fprintf(t.out, "%s %s\n", messagePrefix, msg)
}
