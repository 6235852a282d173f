//go:build !windows

package filesystem

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// writeAtomic writes data with renameio: temp file, fsync, atomic rename.
// An existing target keeps its permissions; new files get perm.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	pendingFile, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(perm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		// removes the temp file unless it was committed
		_ = pendingFile.Cleanup()
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}

	return nil
}
