package document

import (
	"os"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/objdoc/internal/errors"
)

// DefaultExtension is the suffix of input files picked up by Discover.
const DefaultExtension = ".yml"

// Discover lists the regular files in dir whose name ends with ext, in the
// order the directory listing returns them. Subdirectories are not entered.
func Discover(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, derrors.IOFailed("list input directory", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
