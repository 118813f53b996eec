// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"os"

	"github.com/tailor-sh/tailor/internal/config"
	"github.com/tailor-sh/tailor/internal/meta"
	"github.com/urfave/cli/v3"
)

// InitApp constructs the tailor CLI. There is a single root command; its
// flags, validator, and action live in tailor.go.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// A missing config file is fine; flag defaults apply.
	cfg, _ := config.Load()

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	return TailorCommandBuilder(m), nil
}
