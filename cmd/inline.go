package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fexp-cli/fexp/filesystem"
	"github.com/fexp-cli/fexp/inline"
	"github.com/fexp-cli/fexp/key"
	"github.com/fexp-cli/fexp/shell"
	"github.com/fexp-cli/fexp/style"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.PersistentFlags().StringP("dir", "d", "", "Directory that relative paths are resolved against")
	inlineCmd.PersistentFlags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.PersistentFlags().StringP("output", "o", "", "Specify a file path to write the command output")
	_ = inlineCmd.MarkPersistentFlagDirname("dir")
}

// inlineCmd runs single explorer operations without the interactive shell.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Run explorer operations in non-interactive, scriptable mode",
	Long: `Run a single explorer operation and print its result, one value per line or as JSON.

Match selectors for search:
  first - first match
  last - last match
  all - every match
  [number] - select match by index (starting from 0)
  [from]-[to] - select matches by range
  @[substring]@ - select matches whose path contains the substring`,
	Example: `  fexp inline list --dir ~/projects --json
  fexp inline search go.mod --pick first
  fexp inline exec "cd docs" "new notes.md" "ls"`,
}

// inlineWriter opens the --output file or falls back to stdout.
// Styles are rendered for the chosen writer; the returned func closes it.
func inlineWriter(cmd *cobra.Command) (io.Writer, func()) {
	output := lo.Must(cmd.Flags().GetString("output"))
	if output == "" {
		return os.Stdout, func() {}
	}

	file, err := filesystem.API().Create(output)
	handleErr(err)
	style.SetOutput(file)

	return file, func() {
		handleErr(file.Close())
	}
}

func runInline(cmd *cobra.Command, action inline.Action, target string, picker mo.Option[inline.Picker]) {
	out, done := inlineWriter(cmd)

	options := &inline.Options{
		Out:        out,
		Dir:        lo.Must(cmd.Flags().GetString("dir")),
		Action:     action,
		Target:     target,
		Json:       lo.Must(cmd.Flags().GetBool("json")),
		ShowHidden: viper.GetBool(key.ListShowHidden),
		Picker:     picker,
	}

	err := inline.Run(options)
	done()
	handleErr(err)
}

func init() {
	inlineCmd.AddCommand(inlineListCmd)

	inlineListCmd.Flags().BoolP("all", "a", false, "Include entries whose names start with a dot")
	lo.Must0(viper.BindPFlag(key.ListShowHidden, inlineListCmd.Flags().Lookup("all")))
}

var inlineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the immediate entries of the directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, inline.List, "", mo.None[inline.Picker]())
	},
}

func init() {
	inlineCmd.AddCommand(inlineSearchCmd)

	inlineSearchCmd.Flags().StringP("pick", "p", "", "Criteria for selecting specific matches")
}

var inlineSearchCmd = &cobra.Command{
	Use:   "search <filename>",
	Short: "Recursively search for entries with exactly this name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		picker := mo.None[inline.Picker]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			fn, err := inline.ParsePicker(pick)
			handleErr(err)
			picker = mo.Some(fn)
		}

		runInline(cmd, inline.Search, args[0], picker)
	},
}

func init() {
	inlineCmd.AddCommand(inlinePermCmd)
}

var inlinePermCmd = &cobra.Command{
	Use:   "perm <path>",
	Short: "Print the rwx permission string of a path",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, inline.Perm, args[0], mo.None[inline.Picker]())
	},
}

func init() {
	inlineCmd.AddCommand(inlineInfoCmd)
}

var inlineInfoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Print size, type, mode and modification time of a path",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, inline.Info, args[0], mo.None[inline.Picker]())
	},
}

func init() {
	inlineCmd.AddCommand(inlineExecCmd)
}

// inlineExecCmd feeds each argument to the shell as one input line.
var inlineExecCmd = &cobra.Command{
	Use:   "exec <line>...",
	Short: "Execute shell command lines in order without prompting",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, done := inlineWriter(cmd)
		defer done()

		s, err := shell.New(&shell.Options{
			Dir: lo.Must(cmd.Flags().GetString("dir")),
			Out: out,
		})
		handleErr(err)

		for _, line := range args {
			if s.Exec(line) {
				break
			}
		}
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema of structured inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "entry", "info", "output", "permissions":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		out, done := inlineWriter(cmd)
		defer done()

		handleErr(json.NewEncoder(out).Encode(reflector.Reflect(&inline.Output{})))
	},
}
