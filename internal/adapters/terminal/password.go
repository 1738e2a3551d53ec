package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	apperrors "trackr/internal/errors"
)

// Adapter handles operator input from the terminal.
type Adapter struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	lines  *bufio.Reader
}

// NewAdapter creates a new terminal adapter. Prompts are written to stderr;
// stdout is only inspected for tty detection.
func NewAdapter(stdin io.Reader, stdout, stderr io.Writer) *Adapter {
	return &Adapter{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		lines:  bufio.NewReader(stdin),
	}
}

// ReadSecret reads a key from the terminal with echo disabled.
func (a *Adapter) ReadSecret(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if !a.IsInteractive() {
		return "", fmt.Errorf("cannot read secret: %w", apperrors.ErrNotInteractive)
	}

	fmt.Fprint(a.stderr, prompt)

	file, ok := a.stdin.(*os.File)
	if !ok {
		return "", fmt.Errorf("cannot read secret from non-terminal input: %w", apperrors.ErrNotInteractive)
	}
	secret, err := term.ReadPassword(int(file.Fd()))
	fmt.Fprintln(a.stderr) // ReadPassword swallows the newline
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

// ReadLine reads one line of visible input, used for menu choices.
func (a *Adapter) ReadLine(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	fmt.Fprint(a.stderr, prompt)
	line, err := a.lines.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// IsInteractive returns true when both stdin and stdout are terminals.
func (a *Adapter) IsInteractive() bool {
	return isTerminal(a.stdin) && isTerminal(a.stdout)
}

func isTerminal(v any) bool {
	if file, ok := v.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
