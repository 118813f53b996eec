// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tailor-sh/tailor/internal/config"
	"github.com/tailor-sh/tailor/internal/dispatch"
)

// NewLinesFlag constructs the --lines flag. Precedence is flag, then
// TAILOR_LINES, then the "lines" key of the config file.
func NewLinesFlag(cfg config.Type) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "lines",
		Aliases: []string{"n"},
		Usage:   "number of trailing lines to show",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TAILOR_LINES"),
			yaml.YAML("lines", altsrc.StringSourcer(cfg.Source)),
		),
		Value: dispatch.DefaultLines,
	}
}

// NewFollowFlag constructs the --follow flag, passed through to the tail
// capability.
func NewFollowFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "follow",
		Aliases:     []string{"f"},
		Usage:       "keep the file open and follow appended output",
		HideDefault: true,
	}
}

// NewTailCmdFlag constructs the --tail-cmd flag naming the tail-equivalent
// executable. Precedence is flag, then TAILOR_TAIL, then the "tail_cmd"
// key of the config file.
func NewTailCmdFlag(cfg config.Type) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "tail-cmd",
		Usage: "tail-equivalent executable to run",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TAILOR_TAIL"),
			yaml.YAML("tail_cmd", altsrc.StringSourcer(cfg.Source)),
		),
		Value: "tail",
	}
}
