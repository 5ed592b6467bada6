package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fexp-cli/fexp/color"
	"github.com/fexp-cli/fexp/config"
	"github.com/fexp-cli/fexp/constant"
	"github.com/fexp-cli/fexp/filesystem"
	"github.com/fexp-cli/fexp/icon"
	"github.com/fexp-cli/fexp/style"
	"github.com/fexp-cli/fexp/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

var errKeyRequired = errors.New("key is required as an argument or --key flag")

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

// field looks up a registered key.
func field(key string) (config.Field, error) {
	f, ok := config.Default[key]
	if !ok {
		return config.Field{}, errUnknownKey(key)
	}
	return f, nil
}

// keyArg takes the key from the first argument, falling back to --key.
func keyArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if k, _ := cmd.Flags().GetString("key"); k != "" {
		return k, nil
	}
	return "", errKeyRequired
}

// parseValue converts raw to the type of the field's default value.
func parseValue(f config.Field, raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: value is required", f.Key)
	}

	switch f.Value.(type) {
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer value: %s", f.Key, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean value: %s", f.Key, raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return raw[0], nil
	}
}

func configFile() string {
	return filepath.Join(where.Config(), fmt.Sprintf("%s.%s", constant.Fexp, "toml"))
}

// writeConfig persists viper's state, creating the file on first write.
func writeConfig() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

func succeed(format string, a ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, a...))
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings stored in " + constant.Fexp + ".toml",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Keys to describe; all when omitted")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print the fields as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe settings with their defaults and environment variables",
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)

		if keys := lo.Must(cmd.Flags().GetStringSlice("key")); len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))
			for _, key := range keys {
				f, err := field(key)
				handleErr(err)
				fields = append(fields, f)
			}
		}

		slices.SortFunc(fields, func(a, b config.Field) int {
			return strings.Compare(a.Key, b.Key)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, f := range fields {
			if i > 0 {
				cmd.Print("\n\n")
			}
			cmd.Print(f.Pretty())
		}
		cmd.Println()
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "Key to change")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "New value")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Change a setting and save it",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := keyArg(cmd, args)
		handleErr(err)

		f, err := field(key)
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}

		v, err := parseValue(f, raw)
		handleErr(err)

		viper.Set(key, v)
		handleErr(writeConfig())

		succeed("set %s to %s", style.Fg(color.Purple)(key), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "Key to read")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the effective value of a setting",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := keyArg(cmd, args)
		handleErr(err)

		_, err = field(key)
		handleErr(err)

		fmt.Println(viper.Get(key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Replace an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Save the effective settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if exists, _ := filesystem.API().Exists(path); exists && lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(filesystem.API().Remove(path))
		}

		handleErr(viper.SafeWriteConfig())
		succeed("wrote config to %s", path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		succeed("deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "Key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default values",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for key, f := range config.Default {
				viper.Set(key, f.Value)
			}
			handleErr(writeConfig())
			succeed("reset all config values")
			return
		}

		key := lo.Must(cmd.Flags().GetString("key"))
		f, err := field(key)
		handleErr(err)

		viper.Set(key, f.Value)
		handleErr(writeConfig())
		succeed("reset %s to %s", style.Fg(color.Purple)(key), style.Fg(color.Yellow)(fmt.Sprint(f.Value)))
	},
}
