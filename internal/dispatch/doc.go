// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

// Package dispatch turns an invocation plus a probe outcome into exactly
// one Action — tail the file or run the fallback — and executes it as a
// child process, relaying its exit status.
package dispatch
