// Package cli is the interactive terminal front-end. Which commands are
// offered depends on whether a user is signed in.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rohits-web03/lessonplanner/internal/client"
)

type command struct {
	usage string
	help  string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	api      *client.Client
	in       *bufio.Reader
	out      io.Writer
	password PasswordReader

	mu       sync.RWMutex
	commands map[string]command
}

type Option func(*App)

// WithPasswordReader replaces the no-echo terminal read.
func WithPasswordReader(p PasswordReader) Option {
	return func(a *App) { a.password = p }
}

func New(api *client.Client, in io.Reader, out io.Writer, opts ...Option) *App {
	a := &App{api: api, in: bufio.NewReader(in), out: out}
	a.password = func() (string, error) { return readLine(a.in) }
	for _, opt := range opts {
		opt(a)
	}

	a.useCommands(api.Session().Current())
	api.Session().Subscribe(a.useCommands)
	return a
}

// useCommands swaps the command set for the given session state.
func (a *App) useCommands(user *client.SessionUser) {
	var set map[string]command
	if user == nil {
		set = map[string]command{
			"register": {"register", "create an account", a.register},
			"login":    {"login", "sign in", a.login},
		}
	} else {
		set = map[string]command{
			"templates": {"templates", "list plan templates", a.templates},
			"create":    {"create [templateID]", "generate a lesson plan", a.create},
			"history":   {"history", "list your lesson plans", a.history},
			"show":      {"show <id>", "print a lesson plan", a.show},
			"export":    {"export <id>", "get a download link for a plan", a.export},
			"logout":    {"logout", "sign out", a.logout},
		}
	}
	a.mu.Lock()
	a.commands = set
	a.mu.Unlock()
}

func (a *App) lookup(name string) (command, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	c, ok := a.commands[name]
	return c, ok
}

func (a *App) promptText() string {
	if u := a.api.Session().Current(); u != nil {
		return fmt.Sprintf("lessonplan (%s)> ", u.Email)
	}
	return "lessonplan> "
}

// Run reads commands until exit, EOF or ctx is done. Cancelling ctx also
// interrupts a pending command line; prompts inside a command finish first.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Lesson Plan Generator (type 'help' for commands)")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(a.out, a.promptText())

		line, err := a.nextLine(ctx)
		if ctx.Err() != nil {
			fmt.Fprintln(a.out)
			return nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name, args := fields[0], fields[1:]

		switch name {
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return nil
		case "help":
			a.help()
			continue
		}

		cmd, ok := a.lookup(name)
		if !ok {
			fmt.Fprintf(a.out, "Unknown command: %s (type 'help')\n", name)
			continue
		}
		if err := cmd.run(ctx, args); err != nil {
			fmt.Fprintf(a.out, "Error: %s\n", message(err))
		}
	}
}

// nextLine reads one line but gives up when ctx is done. The abandoned read
// keeps its goroutine until input arrives; Run returns right after.
func (a *App) nextLine(ctx context.Context) (string, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := readLine(a.in)
		ch <- result{line, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

func (a *App) help() {
	a.mu.RLock()
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	a.mu.RUnlock()
	sort.Strings(names)

	fmt.Fprintln(a.out, "Available commands:")
	for _, name := range names {
		c, _ := a.lookup(name)
		fmt.Fprintf(a.out, "  %-22s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(a.out, "  %-22s %s\n", "help", "show this list")
	fmt.Fprintf(a.out, "  %-22s %s\n", "exit", "leave the program")
}

// message is what the user sees for err.
func message(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, client.ErrNotLoggedIn):
		return "Please log in first."
	default:
		return err.Error()
	}
}

func parseID(args []string, usage string) (uint, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return uint(n), nil
}
