package scaffold

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// InitGitRepo runs "git init" in dir. A missing git binary is reported as a
// skip message rather than an error.
func InitGitRepo(ctx context.Context, dir string) (skipped string, err error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "git not found, skipping repository initialization", nil
	}

	cmd := exec.CommandContext(ctx, gitPath, "init", "--quiet")
	cmd.Dir = dir
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git init in %s: %w", dir, err)
	}
	return "", nil
}
