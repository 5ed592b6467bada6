package explorer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/fexp-cli/fexp/filesystem"
	"github.com/fexp-cli/fexp/key"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Search walks the whole tree under root and returns, sorted, every path whose
// final component equals target exactly. root itself is never a match and
// unreadable subdirectories are skipped.
func Search(root, target string) ([]string, error) {
	info, err := filesystem.API().Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	var matches []string
	if viper.GetBool(key.SearchFast) && filesystem.IsOs() {
		matches, err = searchParallel(root, target)
	} else {
		matches, err = searchBackend(root, target)
	}
	if err != nil {
		return nil, err
	}

	slices.Sort(matches)
	return matches, nil
}

func searchParallel(root, target string) ([]string, error) {
	var (
		mu      sync.Mutex
		matches []string
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if p != root && d.Name() == target {
			mu.Lock()
			matches = append(matches, p)
			mu.Unlock()
		}
		return nil
	})

	return matches, err
}

func searchBackend(root, target string) ([]string, error) {
	var matches []string

	err := filesystem.API().Walk(root, func(p string, _ os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if p != root && filepath.Base(p) == target {
			matches = append(matches, p)
		}
		return nil
	})

	return matches, err
}
