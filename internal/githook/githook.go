// Package githook installs the post-commit reminder hook into a project's
// git repository.
package githook

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/universal-dev-env/udev/internal/fsutil"
)

// Script is the fixed post-commit hook. It nudges the committer to refresh
// SESSION_HANDOFF.md when the file is stale relative to the commit.
const Script = `#!/bin/sh
# Installed by universal-dev-env. Reminds you to keep SESSION_HANDOFF.md
# current for the next session (human or AI).

handoff="SESSION_HANDOFF.md"
if [ -f "$handoff" ]; then
    modified=$(date -r "$handoff" "+%Y-%m-%d %H:%M" 2>/dev/null || stat -c %y "$handoff" 2>/dev/null)
    echo ""
    echo "Reminder: $handoff last updated $modified"
    echo "Update it if this commit changed the project state."
fi
`

// Install writes the post-commit hook for the repository at root. A missing
// .git directory is not an error; the hook is simply skipped. Any existing
// post-commit hook is kept as a timestamped backup before being replaced.
func Install(root string) (installed bool, err error) {
	gitDir := filepath.Join(root, ".git")
	info, statErr := os.Stat(gitDir)
	if statErr != nil || !info.IsDir() {
		return false, nil
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return false, fmt.Errorf("cannot create hooks directory: %w", err)
	}

	hookPath := filepath.Join(hooksDir, "post-commit")
	if fsutil.Exists(hookPath) {
		backup := fmt.Sprintf("%s.backup.%d", hookPath, time.Now().Unix())
		if err := os.Rename(hookPath, backup); err != nil {
			return false, fmt.Errorf("cannot back up existing post-commit hook: %w", err)
		}
	}

	if err := fsutil.WriteFileAtomic(hookPath, []byte(Script), 0o755); err != nil {
		return false, fmt.Errorf("cannot write post-commit hook: %w", err)
	}
	return true, nil
}

// Uninstall removes the installed hook, restoring nothing. Returns true when
// a hook was actually removed.
func Uninstall(root string) (bool, error) {
	hookPath := filepath.Join(root, ".git", "hooks", "post-commit")
	if !fsutil.Exists(hookPath) {
		return false, nil
	}
	if err := os.Remove(hookPath); err != nil {
		return false, fmt.Errorf("cannot remove post-commit hook: %w", err)
	}
	return true, nil
}
