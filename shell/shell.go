// Package shell implements the interactive read-eval-print loop of the file explorer.
//
// A Shell owns the current directory. Each input line is matched against the
// command table, dispatched to exactly one explorer operation and answered with
// one or more printed lines. No failure ends the loop; only exit or end of input does.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fexp-cli/fexp/constant"
	"github.com/fexp-cli/fexp/explorer"
	"github.com/fexp-cli/fexp/history"
	"github.com/fexp-cli/fexp/key"
	"github.com/fexp-cli/fexp/log"
	"github.com/fexp-cli/fexp/perm"
	"github.com/fexp-cli/fexp/style"
	"github.com/spf13/viper"
)

const defaultPrompt = "> "

type Options struct {
	In  io.Reader
	Out io.Writer
	// Dir is the starting directory; the process working directory when empty.
	Dir string
	// Permissions overrides the changer configured by perm.strategy.
	Permissions perm.Changer
}

type Shell struct {
	in    io.Reader
	out   io.Writer
	dir   string
	perms perm.Changer
}

// New validates the options and returns a Shell positioned in the starting directory.
func New(options *Options) (*Shell, error) {
	dir := options.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("working directory: %w", err)
		}
		dir = wd
	}

	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = abs
	}

	dir, err := explorer.ChangeDir(dir, dir)
	if err != nil {
		return nil, err
	}

	s := &Shell{
		in:    options.In,
		out:   options.Out,
		dir:   dir,
		perms: options.Permissions,
	}

	if s.in == nil {
		s.in = os.Stdin
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.perms == nil {
		s.perms = perm.FromConfig()
	}

	return s, nil
}

// Run creates a Shell and loops until exit or end of input.
func Run(options *Options) error {
	s, err := New(options)
	if err != nil {
		return err
	}
	return s.Run()
}

// Dir returns the current directory.
func (s *Shell) Dir() string {
	return s.dir
}

// Run reads and executes lines until exit or end of input.
// Lines are not length limited.
func (s *Shell) Run() error {
	s.greet()

	reader := bufio.NewReader(s.in)
	for {
		s.prompt()

		line, err := reader.ReadString('\n')
		if line != "" && s.Exec(strings.TrimRight(line, "\r\n")) {
			break
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			s.println()
			break
		}
	}

	s.println(constant.Goodbye)
	return nil
}

// Exec executes a single input line and reports whether the shell should quit.
func (s *Shell) Exec(line string) (quit bool) {
	line = strings.TrimSpace(line)
	s.remember(line)

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimLeft(rest, " \t")

	cmd, ok := lookup[name]
	if !ok {
		s.unknown(name)
		return false
	}

	var args []string
	switch cmd.arity {
	case literal:
		if rest != "" {
			s.unknown("")
			return false
		}
	case optional:
		if rest != "" {
			args = []string{rest}
		}
	case unary:
		if rest == "" {
			s.usage(cmd)
			return false
		}
		args = []string{rest}
	case binary:
		a, b, found := strings.Cut(rest, " ")
		b = strings.TrimSpace(b)
		if !found || b == "" {
			s.usage(cmd)
			return false
		}
		args = []string{a, b}
	}

	log.Command(cmd.name, rest, s.dir)

	if cmd.run != nil {
		cmd.run(s, args)
	}
	return cmd.quit
}

func (s *Shell) greet() {
	if !viper.GetBool(key.ShellWelcome) {
		return
	}
	s.println(style.Banner(constant.Welcome + "\n" + style.Faint(constant.WelcomeHint)))
}

func (s *Shell) prompt() {
	p := viper.GetString(key.ShellPrompt)
	if p == "" {
		p = defaultPrompt
	}
	_, _ = fmt.Fprint(s.out, "\n"+p)
}

func (s *Shell) remember(line string) {
	if line == "" || !viper.GetBool(key.HistoryWrite) {
		return
	}
	if err := history.Remember(line, s.dir); err != nil {
		log.Warnf("history: %s", err)
	}
}

// resolve interprets a command argument relative to the current directory.
func (s *Shell) resolve(arg string) string {
	return explorer.Resolve(s.dir, arg)
}
