package doctor

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// joinIfRelative resolves rel against dir, leaving absolute paths alone.
func joinIfRelative(dir string, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(dir, rel)
}

// isNotExist reports whether err means a file or directory is absent.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
