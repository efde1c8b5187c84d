// Package gitinfo implements domain.RepoInspector using go-git. Run reports
// are annotated with the commit of the repository holding the config file,
// so CI logs can be traced back to the exact revision that was validated.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Inspector resolves git metadata for a directory.
type Inspector struct{}

func New() *Inspector { return &Inspector{} }

func (g *Inspector) IsRepo(dir string) bool {
	_, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

func (g *Inspector) CommitHash(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
