package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukehollenback/toribank/credentials"
	"github.com/lukehollenback/toribank/market"
)

var (
	_ credentials.Prompter = (*Prompter)(nil)
	_ market.ConfirmFunc   = (*Prompter)(nil).Confirm
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}

	o := New(strings.NewReader(input), out)
	o.SetColors(false)

	return o, out
}

func TestLineStripsNewline(t *testing.T) {
	o, out := newTestPrompter("alice\r\nbob")

	first, err := o.Line(":: Username: ")
	require.NoError(t, err)
	assert.Equal(t, "alice", first)

	second, err := o.Line(":: Username: ")
	require.NoError(t, err)
	assert.Equal(t, "bob", second)

	assert.Equal(t, ":: Username: :: Username: ", out.String())

	_, err = o.Line(":: Username: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPasswordFallsBackToLineOffTerminal(t *testing.T) {
	o, _ := newTestPrompter("hunter2\n")

	password, err := o.Password(":: Password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", password)
}

func TestConfirmOnlyAcceptsY(t *testing.T) {
	for answer, want := range map[string]bool{
		"y\n":   true,
		"Y\n":   true,
		" y \n": true,
		"yes\n": false,
		"n\n":   false,
		"\n":    false,
		"":      false,
	} {
		o, _ := newTestPrompter(answer)

		assert.Equal(t, want, o.Confirm(":: Send? (y/n) "), "answer %q", answer)
	}
}
