// Package explorer implements the filesystem operations behind the shell commands.
//
// Every function performs one filesystem primitive (or one traversal) on the active
// backend and returns plain data or an error; rendering is left to the caller.
package explorer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fexp-cli/fexp/filesystem"
	"github.com/fexp-cli/fexp/perm"
)

var (
	ErrNotDirectory = errors.New("not a directory")
	ErrCopyIntoSelf = errors.New("cannot copy a path onto itself")
)

// Entry is one immediate child of a listed directory.
type Entry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size"`
	Mode  string `json:"mode"`
}

// Resolve interprets arg relative to dir. Absolute arguments are kept as given.
func Resolve(dir, arg string) string {
	if filepath.IsAbs(arg) {
		return filepath.Clean(arg)
	}
	return filepath.Join(dir, arg)
}

// Parent returns the parent of dir; the root is its own parent.
func Parent(dir string) string {
	return filepath.Dir(dir)
}

// ChangeDir resolves arg against dir and returns it if it names a directory.
func ChangeDir(dir, arg string) (string, error) {
	target := Resolve(dir, arg)

	isDir, err := filesystem.API().IsDir(target)
	if err != nil || !isDir {
		return "", fmt.Errorf("%s: %w", target, ErrNotDirectory)
	}
	return target, nil
}

// List enumerates the immediate entries of dir in name order.
func List(dir string, showHidden bool) ([]*Entry, error) {
	infos, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	entries := make([]*Entry, 0, len(infos))
	for _, info := range infos {
		if !showHidden && strings.HasPrefix(info.Name(), ".") {
			continue
		}

		entries = append(entries, &Entry{
			Name:  info.Name(),
			Path:  filepath.Join(dir, info.Name()),
			IsDir: info.IsDir(),
			Size:  info.Size(),
			Mode:  perm.Format(info.Mode()),
		})
	}

	return entries, nil
}
