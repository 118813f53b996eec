// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

// Package command defines the tailor CLI. It wires flags, the invocation
// validator, and the probe-then-dispatch action for the root command.
package command
