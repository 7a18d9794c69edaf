package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"golang.org/x/term"
)

//
// Prompter asks the operator questions on a console. It satisfies credentials.Prompter and its
// Confirm method can be handed to a market client as its confirmation policy.
//
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	au  aurora.Aurora

	//
	// fd is the file descriptor behind the input, or -1 when the input is not a file. Passwords are
	// only read without echo when it refers to a terminal.
	//
	fd int
}

//
// New instantiates a prompter that reads answers from the provided input and writes its prompts to
// the provided output.
//
func New(in io.Reader, out io.Writer) *Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}

	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		au:  aurora.NewAurora(true),
		fd:  fd,
	}
}

//
// Stdio instantiates a prompter on the process's standard input and output.
//
func Stdio() *Prompter {
	return New(os.Stdin, os.Stdout)
}

//
// SetColors turns coloring of the prompts on or off.
//
func (o *Prompter) SetColors(enabled bool) {
	o.au = aurora.NewAurora(enabled)
}

func (o *Prompter) prompt(prompt string) {
	fmt.Fprint(o.out, o.au.Bold(o.au.Cyan(prompt)))
}

//
// Line asks the provided question and returns the answer without its trailing newline. An answer
// cut short by the end of the input is still returned as long as it is not empty.
//
func (o *Prompter) Line(prompt string) (string, error) {
	o.prompt(prompt)

	line, err := o.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

//
// Password asks the provided question and returns the answer. On a terminal, the answer is not
// echoed back.
//
func (o *Prompter) Password(prompt string) (string, error) {
	if o.fd < 0 || !term.IsTerminal(o.fd) {
		return o.Line(prompt)
	}

	o.prompt(prompt)

	password, err := term.ReadPassword(o.fd)
	fmt.Fprintln(o.out)

	if err != nil {
		return "", err
	}

	return string(password), nil
}

//
// Confirm asks the provided yes/no question and returns whether or not the answer was "y" (in any
// case). Anything else, including a failure to read an answer, counts as no.
//
func (o *Prompter) Confirm(prompt string) bool {
	answer, err := o.Line(prompt)
	if err != nil {
		fmt.Fprintln(o.out)

		return false
	}

	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
