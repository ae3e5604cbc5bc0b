package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cbodonnell/hanabi/pkg/log"
)

// stdinPrompter asks for text on the terminal the client was started from.
// It blocks the game loop until a line is read; an empty line cancels.
// Only the line ending is stripped so that codes are checked as typed.
type stdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newStdinPrompter(in io.Reader, out io.Writer) *stdinPrompter {
	return &stdinPrompter{in: bufio.NewReader(in), out: out}
}

func (p *stdinPrompter) PromptText(message string) (string, bool) {
	fmt.Fprintf(p.out, "%s\n> ", message)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		if err != io.EOF {
			log.Error("Failed to read prompt: %v", err)
		}
		return "", false
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", false
	}
	return line, true
}
