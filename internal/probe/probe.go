// Copyright (c) 2026 The tailor authors.
// SPDX-License-Identifier: MIT

package probe

import (
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// Tailable reports whether path is a valid tail target: it exists, is not
// a directory, and opens for reading. Every failure collapses to false;
// the reason is logged but never distinguished for dispatch. The result
// holds only for the instant of the probe — the file may change before it
// is acted on, and that race is accepted.
func Tailable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		log.Warnf("cannot stat %s: %v", path, err)
		return false
	}

	if fi.IsDir() {
		log.Warnf("%s is a directory", path)
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warnf("cannot read %s: %v", path, err)
		return false
	}
	_ = f.Close()

	log.Debugf("%s is tailable (%s)", path, humanize.Bytes(uint64(fi.Size())))
	return true
}
