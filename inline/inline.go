// Package inline provides the non-interactive, scriptable execution mode.
package inline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fexp-cli/fexp/explorer"
	"github.com/fexp-cli/fexp/log"
	"golang.org/x/exp/slices"
)

var errTargetRequired = errors.New("target is required")

// Run performs a single action and writes its result to options.Out.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	dir, err := workingDir(options.Dir)
	if err != nil {
		return err
	}

	output := &Output{
		Action: options.Action,
		Dir:    dir,
		Target: options.Target,
	}

	if !slices.Contains(Actions(), options.Action) {
		return fmt.Errorf("unknown action %q, available: %v", options.Action, Actions())
	}

	if options.Action != List && options.Target == "" {
		return fmt.Errorf("%s: %w", options.Action, errTargetRequired)
	}

	switch options.Action {
	case List:
		output.Entries, err = explorer.List(dir, options.ShowHidden)
	case Search:
		output.Matches, err = explorer.Search(dir, options.Target)
		if err == nil && options.Picker.IsPresent() {
			output.Matches = options.Picker.MustGet()(output.Matches)
		}
		log.Infof("inline search for %q in %s: %d matches", options.Target, dir, len(output.Matches))
	case Perm:
		var name, mode string
		name, mode, err = explorer.Permissions(explorer.Resolve(dir, options.Target))
		output.Permissions = &Permissions{Name: name, Mode: mode}
	case Info:
		output.Info, err = explorer.Describe(explorer.Resolve(dir, options.Target))
	}

	if err != nil {
		return err
	}

	if options.Json {
		return writeJson(options.Out, output)
	}
	return writeText(options.Out, output)
}

func workingDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return explorer.ChangeDir(abs, abs)
}

func writeJson(out io.Writer, output *Output) error {
	data, err := asJson(output)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// writeText prints one value per line so the result can be piped.
func writeText(out io.Writer, output *Output) (err error) {
	line := func(a ...any) {
		if err == nil {
			_, err = fmt.Fprintln(out, a...)
		}
	}

	switch output.Action {
	case List:
		for _, e := range output.Entries {
			if e.IsDir {
				line(e.Name + string(filepath.Separator))
			} else {
				line(e.Name)
			}
		}
	case Search:
		for _, m := range output.Matches {
			line(m)
		}
	case Perm:
		line(output.Permissions.Mode)
	case Info:
		info := output.Info
		line("name\t" + info.Name)
		line("path\t" + info.Path)
		line("type\t" + info.MimeType)
		line(fmt.Sprintf("size\t%d", info.Size))
		line("mode\t" + info.Mode)
		line("modified\t" + info.Modified.Format(time.RFC3339))
	}

	return err
}
