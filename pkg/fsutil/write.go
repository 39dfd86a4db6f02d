package fsutil

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPerm = 0755
)

// WriteIfChanged writes content to path only when it differs from the current
// file content. Parent directories are created. Existing file mode is kept.
func WriteIfChanged(path string, content []byte, perm fs.FileMode) (changed bool, err error) {
	if err = os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return false, fmt.Errorf("WriteIfChanged: %w", err)
	}

	stat, statErr := os.Stat(path)
	if statErr != nil {
		if !errors.Is(statErr, fs.ErrNotExist) {
			return false, fmt.Errorf("WriteIfChanged: %w", statErr)
		}

		if err = os.WriteFile(path, content, perm); err != nil {
			return false, fmt.Errorf("WriteIfChanged: %w", err)
		}

		return true, nil
	}

	// compare diff
	oldContent, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("WriteIfChanged: %w", err)
	}

	if bytes.Equal(oldContent, content) {
		return false, nil
	}

	// overwrite file
	if err = os.WriteFile(path, content, stat.Mode().Perm()); err != nil {
		return false, fmt.Errorf("WriteIfChanged: %w", err)
	}

	return true, nil
}
