package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_Log(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.Log("Appending key for %s", "api.trackr.dev")

	assert.Equal(t, "trackr: Appending key for api.trackr.dev\n", buf.String())
}

func TestTerminal_Warn(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.Warn("calling login after a run has started has no effect")

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "trackr: "))
	assert.Contains(t, output, warningLabel)
	assert.Contains(t, output, "calling login after a run has started has no effect")
}

func TestTerminal_LogOnce(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.LogOnce("Currently logged in as: %s", "alice")
	term.LogOnce("Currently logged in as: %s", "alice")
	term.LogOnce("Currently logged in as: %s", "bob")

	output := buf.String()
	assert.Equal(t, 1, strings.Count(output, "alice"))
	assert.Equal(t, 1, strings.Count(output, "bob"))
}

func TestTerminal_WarnOnce(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.WarnOnce("key in code")
	term.WarnOnce("key in code")

	assert.Equal(t, 1, strings.Count(buf.String(), "key in code"))
}

func TestTerminal_Highlight(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{})

	assert.Contains(t, term.Highlight("alice"), "alice")
}
