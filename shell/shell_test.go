package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fexp-cli/fexp/constant"
	"github.com/fexp-cli/fexp/filesystem"
	"github.com/fexp-cli/fexp/key"
	"github.com/fexp-cli/fexp/perm"
	"github.com/fexp-cli/fexp/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	_ = os.Setenv(where.EnvConfigPath, "/shell-config")
}

func workTree() {
	filesystem.SetMemMapFs()
	fs := filesystem.API()
	lo.Must0(fs.MkdirAll("/work/docs/deep", 0o755))
	lo.Must0(fs.MkdirAll("/work/src", 0o755))
	lo.Must0(fs.WriteFile("/work/a.txt", []byte("alpha"), 0o644))
	lo.Must0(fs.WriteFile("/work/docs/deep/target.txt", []byte("target"), 0o644))
}

func session(changer perm.Changer, lines ...string) (string, *Shell) {
	var out bytes.Buffer

	s, err := New(&Options{
		In:          strings.NewReader(strings.Join(lines, "\n") + "\n"),
		Out:         &out,
		Dir:         "/work",
		Permissions: changer,
	})
	So(err, ShouldBeNil)
	So(s.Run(), ShouldBeNil)

	return out.String(), s
}

func TestNavigation(t *testing.T) {
	Convey("Given a shell in /work", t, func() {
		workTree()

		Convey("cd into a subdirectory then back returns to the start", func() {
			_, s := session(perm.Posix{}, "cd docs", "back")
			So(s.Dir(), ShouldEqual, "/work")
		})

		Convey("cd accepts nested and parent paths", func() {
			_, s := session(perm.Posix{}, "cd docs/deep", "cd ..")
			So(s.Dir(), ShouldEqual, "/work/docs")
		})

		Convey("cd to a file reports an invalid directory and stays put", func() {
			out, s := session(perm.Posix{}, "cd a.txt")
			So(out, ShouldContainSubstring, "Invalid directory.")
			So(s.Dir(), ShouldEqual, "/work")
		})

		Convey("back at the root stays at the root", func() {
			_, s := session(perm.Posix{}, "back", "back", "back")
			So(s.Dir(), ShouldEqual, "/")
		})

		Convey("pwd prints the current directory", func() {
			out, _ := session(perm.Posix{}, "cd src", "pwd")
			So(out, ShouldContainSubstring, filepath.Join("/work", "src")+"\n")
		})
	})
}

func TestListing(t *testing.T) {
	Convey("Given a shell in /work", t, func() {
		workTree()

		Convey("ls marks directories and files", func() {
			out, _ := session(perm.Posix{}, "ls")
			So(out, ShouldContainSubstring, "Current Directory: /work")
			So(out, ShouldContainSubstring, constant.DirMarker+"  docs")
			So(out, ShouldContainSubstring, "       a.txt")
			So(strings.Count(out, strings.Repeat("-", separatorWidth)), ShouldEqual, 2)
		})

		Convey("new then list shows the file", func() {
			out, _ := session(perm.Posix{}, "new notes.md", "list")
			So(out, ShouldContainSubstring, "File created: notes.md")
			So(out, ShouldContainSubstring, "       notes.md")
		})

		Convey("names may contain spaces", func() {
			out, _ := session(perm.Posix{}, "new my file.txt")
			So(out, ShouldContainSubstring, "File created: my file.txt")
			So(lo.Must(filesystem.API().Exists("/work/my file.txt")), ShouldBeTrue)
		})

		Convey("mkdir creates a directory that cd can enter", func() {
			out, s := session(perm.Posix{}, "mkdir build", "cd build")
			So(out, ShouldContainSubstring, "Directory created: build")
			So(s.Dir(), ShouldEqual, "/work/build")
		})

		Convey("mkdir of an existing directory reports an error", func() {
			out, _ := session(perm.Posix{}, "mkdir docs")
			So(out, ShouldContainSubstring, "Error:")
		})
	})
}

func TestFileOperations(t *testing.T) {
	Convey("Given a shell in /work", t, func() {
		workTree()
		fs := filesystem.API()

		Convey("cp a b then rm a leaves only b", func() {
			out, _ := session(perm.Posix{}, "cp a.txt b.txt", "rm a.txt")
			So(out, ShouldContainSubstring, "Copied: a.txt -> b.txt")
			So(out, ShouldContainSubstring, "Removed: a.txt")
			So(lo.Must(fs.Exists("/work/a.txt")), ShouldBeFalse)
			So(string(lo.Must(fs.ReadFile("/work/b.txt"))), ShouldEqual, "alpha")
		})

		Convey("cp overwrites without asking", func() {
			lo.Must0(fs.WriteFile("/work/b.txt", []byte("old"), 0o644))
			session(perm.Posix{}, "cp a.txt b.txt")
			So(string(lo.Must(fs.ReadFile("/work/b.txt"))), ShouldEqual, "alpha")
		})

		Convey("mv renames", func() {
			out, _ := session(perm.Posix{}, "mv a.txt src/a.txt")
			So(out, ShouldContainSubstring, "Moved: a.txt -> src/a.txt")
			So(lo.Must(fs.Exists("/work/src/a.txt")), ShouldBeTrue)
		})

		Convey("rm of a missing file reports the error", func() {
			out, _ := session(perm.Posix{}, "rm ghost.txt")
			So(out, ShouldContainSubstring, "Error:")
		})

		Convey("two-argument commands require both arguments", func() {
			out, _ := session(perm.Posix{}, "mv a.txt", "cp a.txt ", "chmod 644")
			So(out, ShouldContainSubstring, "Usage: mv <a> <b>")
			So(out, ShouldContainSubstring, "Usage: cp <a> <b>")
			So(out, ShouldContainSubstring, "Usage: chmod <octal> <file>")
			So(lo.Must(fs.Exists("/work/a.txt")), ShouldBeTrue)
		})

		Convey("prefix commands without an argument print their usage", func() {
			out, _ := session(perm.Posix{}, "cd", "search")
			So(out, ShouldContainSubstring, "Usage: cd <folder>")
			So(out, ShouldContainSubstring, "Usage: search <filename>")
		})
	})
}

func TestSearchCommand(t *testing.T) {
	Convey("Given a tree with one target at depth 2", t, func() {
		workTree()

		Convey("search reports exactly one match with the full path", func() {
			out, _ := session(perm.Posix{}, "search target.txt")
			So(out, ShouldContainSubstring, `Searching for "target.txt"...`)
			So(strings.Count(out, " Found: "), ShouldEqual, 1)
			So(out, ShouldContainSubstring, " Found: "+filepath.Join("/work", "docs", "deep", "target.txt"))
			So(out, ShouldContainSubstring, "1 match")
			So(out, ShouldNotContainSubstring, "File not found.")
		})

		Convey("a missing name reports not found once", func() {
			out, _ := session(perm.Posix{}, "search nothing.txt")
			So(strings.Count(out, "File not found."), ShouldEqual, 1)
		})
	})
}

func TestPermissionCommands(t *testing.T) {
	Convey("Given a shell in /work", t, func() {
		workTree()

		Convey("chmod 644 then perm reports rw-r--r--", func() {
			lo.Must0(filesystem.API().Chmod("/work/a.txt", 0o600))
			out, _ := session(perm.Posix{}, "chmod 644 a.txt", "perm a.txt")
			So(out, ShouldContainSubstring, "Permissions changed.")
			So(out, ShouldContainSubstring, "Permissions for a.txt: rw-r--r--")
		})

		Convey("a malformed mode is reported", func() {
			out, _ := session(perm.Posix{}, "chmod rwx a.txt", "chmod 999 a.txt")
			So(out, ShouldContainSubstring, "Invalid mode: rwx")
			So(out, ShouldContainSubstring, "Invalid mode: 999")
		})

		Convey("chmod of a missing file fails", func() {
			out, _ := session(perm.Posix{}, "chmod 644 ghost.txt")
			So(out, ShouldContainSubstring, "Failed to change permissions.")
		})

		Convey("perm of a missing file reports an access error", func() {
			out, _ := session(perm.Posix{}, "perm ghost.txt")
			So(out, ShouldContainSubstring, "Unable to access file.")
		})

		Convey("the simulated changer reports success without effect", func() {
			out, _ := session(perm.Simulated{}, "chmod 700 a.txt", "perm a.txt")
			So(out, ShouldContainSubstring, "Permissions changed (simulated).")
			So(out, ShouldContainSubstring, "Permissions for a.txt: rw-r--r--")
		})
	})
}

func TestDispatch(t *testing.T) {
	Convey("Given a shell in /work", t, func() {
		workTree()

		Convey("unknown input prints the fixed message and keeps the directory", func() {
			out, s := session(perm.Posix{}, "cd docs", "frobnicate now")
			So(out, ShouldContainSubstring, constant.UnknownCommand)
			So(s.Dir(), ShouldEqual, "/work/docs")
		})

		Convey("literal commands do not accept arguments", func() {
			out, _ := session(perm.Posix{}, "ls docs")
			So(out, ShouldContainSubstring, constant.UnknownCommand)
			So(out, ShouldNotContainSubstring, "Current Directory")
		})

		Convey("a close miss is followed by a suggestion", func() {
			viper.Set(key.ShellSuggest, true)
			defer viper.Set(key.ShellSuggest, false)

			out, _ := session(perm.Posix{}, "serch x")
			So(out, ShouldContainSubstring, constant.UnknownCommand)
			So(out, ShouldContainSubstring, `Did you mean "search"?`)
		})

		Convey("exit stops reading further lines", func() {
			out, _ := session(perm.Posix{}, "exit", "new after.txt")
			So(out, ShouldContainSubstring, constant.Goodbye)
			So(lo.Must(filesystem.API().Exists("/work/after.txt")), ShouldBeFalse)
		})

		Convey("end of input ends the session normally", func() {
			out, _ := session(perm.Posix{}, "pwd")
			So(out, ShouldEndWith, constant.Goodbye+"\n")
		})

		Convey("a very long line does not end the session", func() {
			long := strings.Repeat("x", 70*1024)
			out, _ := session(perm.Posix{}, "new "+long, "new after.txt", "exit")
			So(out, ShouldContainSubstring, "File created: after.txt")
			So(lo.Must(filesystem.API().Exists("/work/"+long)), ShouldBeTrue)
			So(lo.Must(filesystem.API().Exists("/work/after.txt")), ShouldBeTrue)
		})

		Convey("a last line without a newline is still executed", func() {
			var out bytes.Buffer
			s, err := New(&Options{In: strings.NewReader("cd docs"), Out: &out, Dir: "/work", Permissions: perm.Posix{}})
			So(err, ShouldBeNil)
			So(s.Run(), ShouldBeNil)
			So(s.Dir(), ShouldEqual, "/work/docs")
			So(out.String(), ShouldEndWith, constant.Goodbye+"\n")
		})

		Convey("Exec reports quit only for exit", func() {
			s, err := New(&Options{Out: &bytes.Buffer{}, Dir: "/work", Permissions: perm.Posix{}})
			So(err, ShouldBeNil)
			So(s.Exec("back"), ShouldBeFalse)
			So(s.Exec("nonsense"), ShouldBeFalse)
			So(s.Exec("  exit  "), ShouldBeTrue)
		})

		Convey("New rejects a missing starting directory", func() {
			_, err := New(&Options{Dir: "/missing"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSupplementaryCommands(t *testing.T) {
	Convey("Given a shell in /work", t, func() {
		workTree()

		Convey("help lists every command", func() {
			out, _ := session(perm.Posix{}, "help")
			So(out, ShouldContainSubstring, "Available Commands:")
			for _, c := range commands {
				So(out, ShouldContainSubstring, c.usage)
			}
		})

		Convey("help with a topic filters the table", func() {
			out, _ := session(perm.Posix{}, "help perm")
			So(out, ShouldContainSubstring, "perm <file>")
			So(out, ShouldContainSubstring, "chmod <octal> <file>")
			So(out, ShouldNotContainSubstring, "mkdir <folder>")
		})

		Convey("help with an unmatched topic says so", func() {
			out, _ := session(perm.Posix{}, "help zzz")
			So(out, ShouldContainSubstring, "No commands match zzz.")
		})

		Convey("info describes a file", func() {
			out, _ := session(perm.Posix{}, "info a.txt")
			So(out, ShouldContainSubstring, "text/plain")
			So(out, ShouldContainSubstring, "5 B")
			So(out, ShouldContainSubstring, "rw-r--r--")
		})

		Convey("open refuses files of the in-memory backend", func() {
			out, _ := session(perm.Posix{}, "open a.txt")
			So(out, ShouldContainSubstring, "Unable to open file.")
		})

		Convey("history shows remembered lines", func() {
			viper.Set(key.HistoryWrite, true)
			defer viper.Set(key.HistoryWrite, false)

			out, _ := session(perm.Posix{}, "pwd", "cd docs", "history")
			So(out, ShouldContainSubstring, "pwd")
			So(out, ShouldContainSubstring, "cd docs")
		})

		Convey("history without records says so", func() {
			out, _ := session(perm.Posix{}, "history")
			So(out, ShouldContainSubstring, "No history yet.")
		})
	})
}
