// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

// Package config loads tailor.yaml from the standard config locations and
// exposes dotted-key getters. Flag value chains also read the same file.
package config
