package templates

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/objdoc/internal/errors"
)

// PageExtension is appended to the class name to form the page file name.
const PageExtension = ".md"

// PageFileName returns the file name of the page for class.
func PageFileName(class string) string {
	return class + PageExtension
}

// WritePage writes content to <outDir>/<class>.md and returns the path written.
//
// The function ensures:
//   - class names a single file directly under outDir (no path traversal)
//   - an existing page is truncated and replaced, never appended to
//   - the file is opened only once content is complete, and closed on every path
func WritePage(outDir, class, content string) (string, error) {
	if outDir == "" {
		outDir = "."
	}
	if class == "" || strings.ContainsAny(class, `/\`) || class == "." || class == ".." {
		return "", derrors.IOFailed("write page", class, errors.New("class name is not a plain file name"))
	}

	fullPath := filepath.Join(outDir, PageFileName(class))

	// #nosec G304 -- fullPath is a single file name joined to outDir.
	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", derrors.IOFailed("write page", fullPath, err)
	}

	if _, err := file.WriteString(content); err != nil {
		_ = file.Close()
		return "", derrors.IOFailed("write page", fullPath, err)
	}
	if err := file.Close(); err != nil {
		return "", derrors.IOFailed("write page", fullPath, err)
	}
	return fullPath, nil
}
