//go:build !windows
// +build !windows

// Package fsutil holds filesystem helpers shared by the scaffolder.
package fsutil

import (
	"os"

	"github.com/google/renameio/v2"
)

// WriteFile replaces filename with data.
//
// The write goes to a temporary file in the same directory which is then
// renamed over filename, so a failed write never leaves a truncated file.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}
