//go:build windows
// +build windows

// Package fsutil holds filesystem helpers shared by the scaffolder.
package fsutil

import "os"

// WriteFile replaces filename with data. Windows has no atomic rename over
// an existing file that renameio can rely on, so this is a plain write.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}
