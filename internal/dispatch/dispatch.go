// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"github.com/apex/log"
)

// DefaultLines is the line count handed to the tail capability when the
// invocation carries no override.
const DefaultLines = 10

// Invocation is the parsed command line: the target path plus the optional
// fallback command and its arguments, and the tail options in effect.
type Invocation struct {
	Path     string
	Fallback string
	Args     []string

	Lines   int
	Follow  bool
	TailCmd string
}

// Action is the single child process an invocation runs: a command name
// and its argument list. Exactly one Action is constructed per run.
type Action struct {
	Command string
	Args    []string
}

// String renders the action the way it would be typed at a shell prompt.
func (a Action) String() string {
	return strings.Join(append([]string{a.Command}, a.Args...), " ")
}

// Decide constructs the one Action for this invocation. It is pure: the
// same invocation and probe outcome always yield the same Action.
func Decide(inv Invocation, accessible bool) (Action, error) {
	if accessible {
		return TailAction(inv), nil
	}
	if inv.Fallback == "" {
		return Action{}, &NoFallbackError{Path: inv.Path}
	}
	return FallbackAction(inv.Fallback, inv.Args, inv.Path), nil
}

// TailAction builds the tail invocation for the target path.
func TailAction(inv Invocation) Action {
	cmd := inv.TailCmd
	if cmd == "" {
		cmd = "tail"
	}
	lines := inv.Lines
	if lines <= 0 {
		lines = DefaultLines
	}

	args := []string{"-n", strconv.Itoa(lines)}
	if inv.Follow {
		args = append(args, "-f")
	}
	args = append(args, inv.Path)

	return Action{Command: cmd, Args: args}
}

// FallbackAction builds the fallback invocation. The target path is always
// appended last, after any caller-supplied arguments.
func FallbackAction(command string, args []string, path string) Action {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, args...)
	argv = append(argv, path)
	return Action{Command: command, Args: argv}
}

// Run spawns the action with inherited standard streams, blocks until the
// child exits, and relays its status. One attempt, no retries.
func Run(ctx context.Context, a Action) error {
	log.Debugf("executing: %s", a)

	c := exec.CommandContext(ctx, a.Command, a.Args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	if err == nil {
		return nil
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		code := ee.ExitCode()
		if code < 0 {
			// Killed by a signal; relay the shell convention of
			// 128+signal so a SIGTERM'd child reads as 143, not as an
			// ordinary failure.
			code = 255
			if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
				code = 128 + int(ws.Signal())
			}
		}
		log.Errorf("command %q failed with exit code: %d", a.Command, code)
		return &ExitError{Code: code}
	}

	return &SpawnError{Command: a.Command, Err: err}
}
