// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/tailor-sh/tailor/internal/config"
)

// Meta are the invocation-scoped values available to the command.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}
