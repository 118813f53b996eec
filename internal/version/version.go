// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

package version

// Version is the release version, stamped at build time via -ldflags.
var Version = "dev"
