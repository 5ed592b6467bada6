// Package open launches files with the system's default handler or a chosen application.
package open

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fexp-cli/fexp/constant"
	"github.com/fexp-cli/fexp/filesystem"
)

// ErrVirtualFs is returned when the active backend has no files an external program could open.
var ErrVirtualFs = errors.New("only files on the OS filesystem can be opened")

// Start opens path with app, or the default handler when app is empty, without waiting for it to exit.
func Start(path, app string) error {
	if !filesystem.IsOs() {
		return ErrVirtualFs
	}

	if _, err := filesystem.API().Stat(path); err != nil {
		return err
	}

	cmd, ok := command(runtime.GOOS, path, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(goos, path, app string) (*exec.Cmd, bool) {
	if app != "" {
		return commandWith(goos, path, app)
	}

	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", path), true
	case constant.Darwin:
		return exec.Command("open", path), true
	case constant.Linux:
		return exec.Command("xdg-open", path), true
	case constant.Android:
		return exec.Command("termux-open", path), true
	default:
		return nil, false
	}
}

func commandWith(goos, path, app string) (*exec.Cmd, bool) {
	switch goos {
	case constant.Windows:
		// start treats & as a command separator
		escaped := strings.ReplaceAll(path, "&", "^&")
		return exec.Command("cmd", "/C", "start", "", app, escaped), true
	case constant.Darwin:
		return exec.Command("open", "-a", app, path), true
	case constant.Linux:
		return exec.Command(app, path), true
	case constant.Android:
		return exec.Command("termux-open", "--choose", path), true
	default:
		return nil, false
	}
}
