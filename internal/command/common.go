// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/tailor-sh/tailor/internal/dispatch"
	"github.com/tailor-sh/tailor/internal/meta"
)

// UsageError is a caller mistake in the invocation itself: a missing
// target path or a bad flag value. It is reported before any probe.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If
// missing or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// BuildInvocation assembles the dispatch.Invocation from the parsed
// command line. Flag parsing stops at the first positional, so fallback
// arguments that look like flags pass through untouched; the first
// positional is the target path, the second (if any) the fallback
// command, and the rest its arguments.
func BuildInvocation(cmd *cli.Command) dispatch.Invocation {
	args := cmd.Args().Slice()

	inv := dispatch.Invocation{
		Path:    args[0],
		Lines:   int(cmd.Int("lines")),
		Follow:  cmd.Bool("follow"),
		TailCmd: cmd.String("tail-cmd"),
	}

	if len(args) > 1 {
		inv.Fallback = args[1]
		inv.Args = args[2:]
	}

	return inv
}
