package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/objdoc/internal/errors"
)

func TestWritePage(t *testing.T) {
	outDir := t.TempDir()

	fullPath, err := WritePage(outDir, "Item", "content")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outDir, "Item.md"), fullPath)

	// #nosec G304 -- fullPath is controlled by test.
	data, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	require.Equal(t, "content", string(data))
}

func TestWritePage_Overwrites(t *testing.T) {
	outDir := t.TempDir()
	existing := filepath.Join(outDir, "Item.md")
	require.NoError(t, os.WriteFile(existing, []byte("a much longer previous page body"), 0o600))

	_, err := WritePage(outDir, "Item", "new")
	require.NoError(t, err)

	// #nosec G304 -- path is controlled by test.
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestWritePage_PathTraversal(t *testing.T) {
	outDir := t.TempDir()

	for _, class := range []string{"../outside", "a/b", `a\b`, "..", ""} {
		_, err := WritePage(outDir, class, "content")
		require.Error(t, err, "class %q", class)
		require.True(t, derrors.IsCategory(err, derrors.CategoryFileSystem))
	}
}

func TestWritePage_MissingDirectory(t *testing.T) {
	_, err := WritePage(filepath.Join(t.TempDir(), "missing"), "Item", "content")
	require.Error(t, err)
	require.True(t, derrors.IsCategory(err, derrors.CategoryFileSystem))
}

func TestPageFileName(t *testing.T) {
	require.Equal(t, "Item.md", PageFileName("Item"))
}
