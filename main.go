// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tailor-sh/tailor/internal/command"
	"github.com/tailor-sh/tailor/internal/dispatch"
	mylog "github.com/tailor-sh/tailor/internal/log"
	"github.com/tailor-sh/tailor/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	// Short-circuit --version/-v. Only arguments before the first
	// positional count; everything from the target path on belongs to the
	// invocation and may legitimately spell -v for the fallback.
	for _, a := range args[1:] {
		if !strings.HasPrefix(a, "-") {
			break
		}
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if err := app.Run(ctx, args); err != nil {
		// A child that ran and failed already wrote its own stderr; just
		// relay its status.
		var xe *dispatch.ExitError
		if errors.As(err, &xe) {
			return xe.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}

	return 0
}

// exitCode maps Dispatcher-level failures to their exit statuses: 1 for an
// inaccessible file with no fallback, 126/127 for a command that could not
// be started, 2 for usage and flag errors.
func exitCode(err error) int {
	var se *dispatch.SpawnError
	if errors.As(err, &se) {
		return se.Status()
	}
	var nf *dispatch.NoFallbackError
	if errors.As(err, &nf) {
		return 1
	}
	return 2
}
