package scaffold

import (
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
)

// WalkFunc is called for every file and directory found by Walk.
type WalkFunc func(path string, info os.FileInfo, err error) error

// Walk traverses a billy filesystem depth-first, directories before their
// contents. The root itself is not reported.
func Walk(bfs billy.Filesystem, root string, fn WalkFunc) error {
	entries, err := bfs.ReadDir(root)
	if err != nil {
		return fn(root, nil, err)
	}

	for _, info := range entries {
		child := path.Join(root, info.Name())
		if err := fn(child, info, nil); err != nil {
			return err
		}
		if info.IsDir() {
			if err := Walk(bfs, child, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
