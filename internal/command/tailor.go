// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tailor-sh/tailor/internal/dispatch"
	"github.com/tailor-sh/tailor/internal/meta"
	"github.com/tailor-sh/tailor/internal/probe"
)

// TailorCommandAction is the action handler for the root command. It
// probes the target file once, constructs the one Action for this run,
// and executes it. Child output passes through untouched.
func TailorCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	inv := BuildInvocation(cmd)

	accessible := probe.Tailable(inv.Path)

	action, err := dispatch.Decide(inv, accessible)
	if err != nil {
		return err
	}

	if !accessible {
		log.Infof("file %s cannot be tailed, executing: %s", inv.Path, action)
	}

	return dispatch.Run(ctx, action)
}

// TailorCommandBuilder constructs the root cli.Command, wiring metadata,
// flags, and the validator/action pair.
func TailorCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "tailor",
		Usage:     "tail a file, or run a fallback command against it",
		UsageText: `tailor [options] <file> [fallback_command] [args...]`,
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewFollowFlag(),
			NewLinesFlag(m.Config),
			NewTailCmdFlag(m.Config),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := TailorCommandValidator(ctx, cmd); err != nil {
				return err
			}
			return TailorCommandAction(ctx, cmd)
		},
	}
}

// TailorCommandValidator checks invocation arity and flag values. It runs
// before any filesystem access against the target.
func TailorCommandValidator(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return &UsageError{Message: "missing required <file> argument"}
	}
	if int(cmd.Int("lines")) <= 0 {
		return &UsageError{Message: "--lines must be a positive number"}
	}
	return nil
}
