// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

// tailor is the main package for the tailor command line tool. It wires the
// CLI, delegates to internal packages, and serves as the entry point.
package main
