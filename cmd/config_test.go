package cmd

import (
	"testing"

	"github.com/fexp-cli/fexp/config"
	"github.com/fexp-cli/fexp/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
)

func TestParseValue(t *testing.T) {
	Convey("Given registered fields", t, func() {
		Convey("values take the type of the default", func() {
			So(lo.Must(parseValue(config.Default[key.HistoryLimit], []string{"42"})), ShouldEqual, 42)
			So(lo.Must(parseValue(config.Default[key.ShellSuggest], []string{"false"})), ShouldEqual, false)
			So(lo.Must(parseValue(config.Default[key.ShellPrompt], []string{"$ "})), ShouldEqual, "$ ")
		})

		Convey("malformed values are rejected", func() {
			_, err := parseValue(config.Default[key.HistoryLimit], []string{"many"})
			So(err, ShouldNotBeNil)

			_, err = parseValue(config.Default[key.LogsJson], []string{"perhaps"})
			So(err, ShouldNotBeNil)

			_, err = parseValue(config.Default[key.ShellPrompt], nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestKeyLookup(t *testing.T) {
	Convey("Given a command with a --key flag", t, func() {
		cmd := &cobra.Command{}
		cmd.Flags().String("key", "", "")

		Convey("the argument wins over the flag", func() {
			lo.Must0(cmd.Flags().Set("key", key.LogsLevel))
			So(lo.Must(keyArg(cmd, []string{key.ShellPrompt})), ShouldEqual, key.ShellPrompt)
			So(lo.Must(keyArg(cmd, nil)), ShouldEqual, key.LogsLevel)
		})

		Convey("a missing key is an error", func() {
			_, err := keyArg(cmd, nil)
			So(err, ShouldEqual, errKeyRequired)
		})

		Convey("unknown keys suggest the closest one", func() {
			_, err := field("shell.promt")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.ShellPrompt)
		})
	})
}
