// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"fmt"
	"os/exec"
)

// NoFallbackError means the target file was inaccessible and the caller
// supplied no fallback command.
type NoFallbackError struct {
	Path string
}

func (e *NoFallbackError) Error() string {
	return fmt.Sprintf("file %q is not readable and no fallback command specified", e.Path)
}

// ExitError carries the non-zero exit status of a child that ran. It is a
// relay, not a Dispatcher failure; the child already reported on stderr.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

// SpawnError means the child could not be started at all.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute command %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Status follows shell convention: 127 for a command not found, 126 for
// one that exists but could not be run.
func (e *SpawnError) Status() int {
	if errors.Is(e.Err, exec.ErrNotFound) {
		return 127
	}
	return 126
}
