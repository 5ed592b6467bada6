package shell

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fexp-cli/fexp/color"
	"github.com/fexp-cli/fexp/constant"
	"github.com/fexp-cli/fexp/explorer"
	"github.com/fexp-cli/fexp/history"
	"github.com/fexp-cli/fexp/icon"
	"github.com/fexp-cli/fexp/key"
	"github.com/fexp-cli/fexp/open"
	"github.com/fexp-cli/fexp/perm"
	"github.com/fexp-cli/fexp/style"
	"github.com/fexp-cli/fexp/util"
	"github.com/spf13/viper"
)

type arity int

const (
	// literal commands match only without trailing text.
	literal arity = iota
	// optional commands accept the remainder when present.
	optional
	// unary commands take the whole remainder as one argument.
	unary
	// binary commands split the remainder at the first space.
	binary
)

type command struct {
	name    string
	aliases []string
	usage   string
	help    string
	arity   arity
	quit    bool
	run     func(s *Shell, args []string)
}

const defaultHistoryLimit = 20

var (
	commands []*command
	lookup   map[string]*command
)

func init() {
	commands = []*command{
		{name: "ls", aliases: []string{"list"}, usage: "ls or list", help: "Show current directory contents", arity: literal, run: (*Shell).list},
		{name: "cd", usage: "cd <folder>", help: "Enter folder", arity: unary, run: (*Shell).cd},
		{name: "back", usage: "back", help: "Go up one level", arity: literal, run: (*Shell).back},
		{name: "pwd", usage: "pwd", help: "Print the current directory", arity: literal, run: (*Shell).pwd},
		{name: "mkdir", usage: "mkdir <folder>", help: "Create new folder", arity: unary, run: (*Shell).mkdir},
		{name: "new", usage: "new <file>", help: "Create new file", arity: unary, run: (*Shell).create},
		{name: "rm", usage: "rm <file>", help: "Delete file or empty folder", arity: unary, run: (*Shell).remove},
		{name: "mv", usage: "mv <a> <b>", help: "Rename or move file", arity: binary, run: (*Shell).move},
		{name: "cp", usage: "cp <a> <b>", help: "Copy file or folder, overwriting the destination", arity: binary, run: (*Shell).copy},
		{name: "search", usage: "search <filename>", help: "Search file recursively", arity: unary, run: (*Shell).search},
		{name: "perm", usage: "perm <file>", help: "View file permissions", arity: unary, run: (*Shell).permissions},
		{name: "chmod", usage: "chmod <octal> <file>", help: "Change permissions (simulated on Windows)", arity: binary, run: (*Shell).chmod},
		{name: "open", usage: "open <file>", help: "Open with the default application", arity: unary, run: (*Shell).open},
		{name: "info", usage: "info <file>", help: "Show size, type and modification time", arity: unary, run: (*Shell).info},
		{name: "history", usage: "history", help: "Show recently entered commands", arity: literal, run: (*Shell).history},
		{name: "help", usage: "help [topic]", help: "Show available commands", arity: optional, run: (*Shell).help},
		{name: "exit", usage: "exit", help: "Quit program", arity: literal, quit: true},
	}

	lookup = make(map[string]*command)
	for _, c := range commands {
		lookup[c.name] = c
		for _, alias := range c.aliases {
			lookup[alias] = c
		}
	}
}

func (s *Shell) list(_ []string) {
	entries, err := explorer.List(s.dir, viper.GetBool(key.ListShowHidden))
	if err != nil {
		s.fail("Unable to list directory.", err)
		return
	}

	separator := s.separator()

	s.println("Current Directory: " + s.dir)
	s.println(separator)
	for _, e := range entries {
		if e.IsDir {
			s.println(constant.DirMarker + "  " + style.Fg(color.Directory)(e.Name))
		} else {
			s.println(strings.Repeat(" ", len(constant.DirMarker)+2) + e.Name)
		}
	}
	s.println(separator)
}

func (s *Shell) cd(args []string) {
	dir, err := explorer.ChangeDir(s.dir, args[0])
	if err != nil {
		s.fail("Invalid directory.", nil)
		return
	}
	s.dir = dir
}

func (s *Shell) back(_ []string) {
	s.dir = explorer.Parent(s.dir)
}

func (s *Shell) pwd(_ []string) {
	s.println(s.dir)
}

func (s *Shell) mkdir(args []string) {
	if err := explorer.Mkdir(s.resolve(args[0])); err != nil {
		s.failErr(err)
		return
	}
	s.success("Directory created: " + filepath.Base(s.resolve(args[0])))
}

func (s *Shell) create(args []string) {
	path := s.resolve(args[0])
	if err := explorer.CreateFile(path); err != nil {
		s.fail("Error creating file.", err)
		return
	}
	s.success("File created: " + filepath.Base(path))
}

func (s *Shell) remove(args []string) {
	if err := explorer.Remove(s.resolve(args[0])); err != nil {
		s.failErr(err)
		return
	}
	s.success("Removed: " + args[0])
}

func (s *Shell) move(args []string) {
	if err := explorer.Move(s.resolve(args[0]), s.resolve(args[1])); err != nil {
		s.failErr(err)
		return
	}
	s.success(fmt.Sprintf("Moved: %s -> %s", args[0], args[1]))
}

func (s *Shell) copy(args []string) {
	if err := explorer.Copy(s.resolve(args[0]), s.resolve(args[1])); err != nil {
		s.failErr(err)
		return
	}
	s.success(fmt.Sprintf("Copied: %s -> %s", args[0], args[1]))
}

func (s *Shell) search(args []string) {
	target := args[0]
	s.println(decorate(icon.Search, fmt.Sprintf("Searching for %q...", target)))

	matches, err := explorer.Search(s.dir, target)
	if err != nil {
		s.fail("Search failed.", err)
		return
	}

	if len(matches) == 0 {
		s.println("File not found.")
		return
	}

	for _, m := range matches {
		s.println(" Found: " + m)
	}
	s.println(style.Faint(util.Quantify(len(matches), "match", "matches")))
}

func (s *Shell) permissions(args []string) {
	name, mode, err := explorer.Permissions(s.resolve(args[0]))
	if err != nil {
		s.fail("Unable to access file.", err)
		return
	}
	s.println(decorate(icon.Lock, fmt.Sprintf("Permissions for %s: %s", name, mode)))
}

func (s *Shell) chmod(args []string) {
	err := explorer.ChangePermissions(s.perms, s.resolve(args[1]), args[0])
	switch {
	case errors.Is(err, perm.ErrInvalidMode):
		s.fail("Invalid mode: "+args[0], nil)
	case err != nil:
		s.fail("Failed to change permissions.", err)
	case s.perms.Simulated():
		s.success("Permissions changed (simulated).")
	default:
		s.success("Permissions changed.")
	}
}

func (s *Shell) info(args []string) {
	info, err := explorer.Describe(s.resolve(args[0]))
	if err != nil {
		s.fail("Unable to access file.", err)
		return
	}

	row := func(label, value string) {
		s.println(fmt.Sprintf("%s %s", style.Fg(color.Blue)(fmt.Sprintf("%-9s", label+":")), value))
	}

	s.println(decorate(icon.Info, style.Bold(info.Name)))
	row("Path", info.Path)
	row("Type", info.MimeType)
	row("Size", fmt.Sprintf("%s %s", info.HumanSize, style.Faint(util.Quantify(int(info.Size), "byte", "bytes"))))
	row("Mode", info.Mode)
	row("Modified", info.Age())
}

func (s *Shell) open(args []string) {
	if err := open.Start(s.resolve(args[0]), viper.GetString(key.OpenWith)); err != nil {
		s.fail("Unable to open file.", err)
		return
	}
	s.success("Opened: " + args[0])
}

func (s *Shell) history(_ []string) {
	limit := viper.GetInt(key.HistoryLimit)
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := history.Recent(limit)
	if err != nil {
		s.fail("Unable to read history.", err)
		return
	}

	if len(records) == 0 {
		s.println(style.Faint("No history yet."))
		return
	}

	for i, r := range records {
		s.println(decorate(icon.History, fmt.Sprintf("%3d  %s  %s", i+1, r.Line, style.Faint(r.Dir))))
	}
}
