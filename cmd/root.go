// Package cmd implements the command-line interface for fexp.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fexp-cli/fexp/color"
	"github.com/fexp-cli/fexp/constant"
	"github.com/fexp-cli/fexp/icon"
	"github.com/fexp-cli/fexp/key"
	"github.com/fexp-cli/fexp/log"
	"github.com/fexp-cli/fexp/perm"
	"github.com/fexp-cli/fexp/shell"
	"github.com/fexp-cli/fexp/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().StringP("dir", "d", "", "Start the shell in this directory instead of the working directory")
	_ = rootCmd.MarkFlagDirname("dir")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist entered commands to the history file")
	lo.Must0(viper.BindPFlag(key.HistoryWrite, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().StringP("perm", "P", "", "How chmod is applied (auto, posix, simulate)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("perm", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{perm.StrategyAuto, perm.StrategyPosix, perm.StrategySimulate}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.PermStrategy, rootCmd.PersistentFlags().Lookup("perm")))
}

// rootCmd starts the interactive file explorer shell.
var rootCmd = &cobra.Command{
	Use:   constant.Fexp,
	Short: "A console-based file explorer shell",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - A console-based file explorer shell"),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := shell.Options{
			Dir: lo.Must(cmd.Flags().GetString("dir")),
		}
		handleErr(shell.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
