package cmd

import (
	"fmt"

	"github.com/fexp-cli/fexp/filesystem"
	"github.com/fexp-cli/fexp/icon"
	"github.com/fexp-cli/fexp/util"
	"github.com/fexp-cli/fexp/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is a resource that can be wiped.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"history file", "history", mo.Some("s"), where.History},
	{"logs directory", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes persisted history and logs.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the command history or the log files",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if !doClear(target.argLong) {
				continue
			}

			anyCleared = true
			location := target.location()
			if exists, _ := filesystem.API().Exists(location); exists {
				handleErr(util.Delete(location))
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
