package explorer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fexp-cli/fexp/filesystem"
	"github.com/fexp-cli/fexp/util"
	"github.com/spf13/afero"
)

// CreateFile creates path, truncating it if it already exists.
func CreateFile(path string) error {
	f, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return err
	}
	return f.Close()
}

// Mkdir creates a single directory; the parent must exist.
func Mkdir(path string) error {
	return filesystem.API().Mkdir(path, os.ModePerm)
}

// Remove deletes a file or an empty directory.
func Remove(path string) error {
	return filesystem.API().Remove(path)
}

// Move renames src to dst.
func Move(src, dst string) error {
	return filesystem.API().Rename(src, dst)
}

// Copy copies src to dst, overwriting existing files without asking.
// Directories are copied recursively. A dst naming an existing directory
// receives src under its own base name.
func Copy(src, dst string) error {
	fs := filesystem.API()

	info, err := fs.Stat(src)
	if err != nil {
		return err
	}

	if isDir, _ := fs.IsDir(dst); isDir && dst != src {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	if dst == src {
		return fmt.Errorf("%s: %w", src, ErrCopyIntoSelf)
	}

	if !info.IsDir() {
		return copyFile(src, dst, info.Mode().Perm())
	}

	if within(src, dst) {
		return fmt.Errorf("%s -> %s: %w", src, dst, ErrCopyIntoSelf)
	}

	return fs.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return fs.MkdirAll(target, info.Mode().Perm())
		}
		return copyFile(path, target, info.Mode().Perm())
	})
}

// within reports whether path lies inside dir.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func copyFile(src, dst string, mode os.FileMode) error {
	fs := filesystem.API()

	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer util.Ignore(in.Close)

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}

	if err = out.Close(); err != nil {
		return err
	}

	// OpenFile only applies mode on creation.
	return syncMode(fs, dst, mode)
}

func syncMode(fs afero.Afero, path string, mode os.FileMode) error {
	info, err := fs.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm() == mode {
		return nil
	}
	return fs.Chmod(path, mode)
}
