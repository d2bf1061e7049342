package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Provenance implements domain.GitInfo using go-git.
type Provenance struct{}

func New() *Provenance {
	return &Provenance{}
}

// CommitHash returns the HEAD commit of the repository holding the log
// folder. Parent directories are searched, since log folders usually sit
// inside a course repository.
func (p *Provenance) CommitHash(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("log folder %s is not under git: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD for %s: %w", dir, err)
	}

	return head.Hash().String(), nil
}
