// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

// Package probe answers the one question tailor asks: can this file be
// opened for reading right now.
package probe
