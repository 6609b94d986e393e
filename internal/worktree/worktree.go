// Package worktree locates the Git worktree enclosing a directory.
package worktree

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

var ErrNotRepository = errors.New("not inside a git worktree")

// Root returns the top-level directory of the worktree containing path, walking up parent directories.
func Root(path string) (string, error) {
	repository, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", ErrNotRepository
		}
		return "", fmt.Errorf("opening git repository: %w", err)
	}

	tree, err := repository.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", ErrNotRepository
		}
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	return tree.Filesystem.Root(), nil
}
