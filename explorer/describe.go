package explorer

import (
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fexp-cli/fexp/filesystem"
	"github.com/fexp-cli/fexp/perm"
	"github.com/fexp-cli/fexp/util"
	"github.com/gabriel-vasile/mimetype"
)

const directoryMime = "inode/directory"

// Info describes a single path in detail.
type Info struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	IsDir     bool      `json:"is_dir"`
	Size      int64     `json:"size"`
	HumanSize string    `json:"human_size"`
	MimeType  string    `json:"mime_type"`
	Mode      string    `json:"mode"`
	Modified  time.Time `json:"modified"`
}

// Age renders the modification time relative to now.
func (i *Info) Age() string {
	return humanize.Time(i.Modified)
}

// Permissions returns the base name of path and its rwx string.
func Permissions(path string) (name, mode string, err error) {
	info, err := filesystem.API().Stat(path)
	if err != nil {
		return "", "", err
	}
	return filepath.Base(path), perm.Format(info.Mode()), nil
}

// ChangePermissions parses an octal mode string and applies it through c.
func ChangePermissions(c perm.Changer, path, mode string) error {
	parsed, err := perm.ParseOctal(mode)
	if err != nil {
		return err
	}
	return c.Chmod(path, parsed)
}

// Describe stats path and sniffs the content type of regular files.
func Describe(path string) (*Info, error) {
	fs := filesystem.API()

	stat, err := fs.Stat(path)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Name:      filepath.Base(path),
		Path:      path,
		IsDir:     stat.IsDir(),
		Size:      stat.Size(),
		HumanSize: humanize.Bytes(uint64(stat.Size())),
		Mode:      perm.Format(stat.Mode()),
		Modified:  stat.ModTime(),
	}

	if info.IsDir {
		info.MimeType = directoryMime
		return info, nil
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(f.Close)

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, err
	}
	info.MimeType = mtype.String()

	return info, nil
}
