package worktree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_FromNestedDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := git.PlainInit(dir, false)
	require.NoError(t, err, "initializing repository")

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	root, err := Root(nested)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestRoot_FromRoot(t *testing.T) {
	dir := t.TempDir()

	_, err := git.PlainInit(dir, false)
	require.NoError(t, err, "initializing repository")

	root, err := Root(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestRoot_NotRepository(t *testing.T) {
	dir := t.TempDir()

	_, err := Root(dir)
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestRoot_BareRepository(t *testing.T) {
	dir := t.TempDir()

	_, err := git.PlainInit(dir, true)
	require.NoError(t, err, "initializing bare repository")

	_, err = Root(dir)
	assert.ErrorIs(t, err, ErrNotRepository)
}
