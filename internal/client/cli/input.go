package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PasswordReader reads a password without echoing it.
type PasswordReader func() (string, error)

// TerminalPassword reads from the terminal on fd with echo off. When fd is
// not a terminal it falls back to reading a plain line from fallback.
func TerminalPassword(fd int, fallback *bufio.Reader) PasswordReader {
	return func() (string, error) {
		if !term.IsTerminal(fd) {
			return readLine(fallback)
		}
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stdout)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// prompt prints label and reads a single trimmed line.
func prompt(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprintf(w, "%s: ", label)
	return readLine(r)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
