//go:build windows

package filesystem

import (
	"os"
)

// writeAtomic falls back to a plain write; renameio does not support Windows.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, data, perm)
}
