// Package history persists the command lines entered in the shell.
package history

import (
	"time"

	"github.com/fexp-cli/fexp/filesystem"
	"github.com/fexp-cli/fexp/where"
	"github.com/metafates/gache"
)

// maxStored bounds the persisted history; older records are dropped first.
const maxStored = 500

// Record is one entered command line.
type Record struct {
	Line string    `json:"line"`
	Dir  string    `json:"dir"`
	At   time.Time `json:"at"`
}

func store() *gache.Cache[[]*Record] {
	return gache.New[[]*Record](
		&gache.Options{
			Path:       where.History(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
}

// Get returns every stored record, oldest first.
func Get() ([]*Record, error) {
	cached, expired, err := store().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return []*Record{}, nil
	}
	return cached, nil
}

// Remember appends a command line entered in dir.
func Remember(line, dir string) error {
	records, err := Get()
	if err != nil {
		return err
	}

	records = append(records, &Record{Line: line, Dir: dir, At: time.Now()})
	if len(records) > maxStored {
		records = records[len(records)-maxStored:]
	}

	return store().Set(records)
}

// Recent returns at most n of the newest records, oldest first.
func Recent(n int) ([]*Record, error) {
	records, err := Get()
	if err != nil {
		return nil, err
	}

	if n >= 0 && len(records) > n {
		records = records[len(records)-n:]
	}
	return records, nil
}
