package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// addGitignoreEntry appends the log file to the repo's .gitignore unless an
// equivalent entry already exists. It reports whether the file changed.
func addGitignoreEntry(repoRoot, logPath string) (bool, error) {
	entry, err := normalizeGitignorePath(repoRoot, logPath)
	if err != nil {
		return false, err
	}

	gitignorePath := filepath.Join(repoRoot, ".gitignore")
	var existing []byte
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = data
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("read .gitignore: %w", err)
	}

	for _, line := range strings.Split(string(existing), "\n") {
		if strings.TrimSpace(line) == entry {
			return false, nil
		}
	}

	updated := string(existing)
	if len(updated) > 0 && !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}
	updated += entry + "\n"
	if err := os.WriteFile(gitignorePath, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("write .gitignore: %w", err)
	}
	return true, nil
}

// normalizeGitignorePath converts a log path to a repo-relative slash path.
func normalizeGitignorePath(repoRoot, logPath string) (string, error) {
	if strings.TrimSpace(logPath) == "" {
		return "", fmt.Errorf("log path is required")
	}
	clean := filepath.Clean(logPath)
	if filepath.IsAbs(clean) {
		rel, err := filepath.Rel(repoRoot, clean)
		if err != nil {
			return "", fmt.Errorf("resolve log path: %w", err)
		}
		if strings.HasPrefix(rel, "..") {
			return "", fmt.Errorf("log path %q is outside the repo root", logPath)
		}
		clean = rel
	}
	clean = strings.TrimPrefix(clean, "."+string(filepath.Separator))
	if clean == "." || clean == "" || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("log path %q is outside the repo root", logPath)
	}
	return filepath.ToSlash(clean), nil
}
