package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/fexp-cli/fexp/filesystem"
	"github.com/fexp-cli/fexp/key"
	"github.com/fexp-cli/fexp/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	_ = os.Setenv(where.EnvConfigPath, "/config-test")
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.ShellPrompt), ShouldEqual, "> ")
			So(viper.GetString(key.PermStrategy), ShouldEqual, "auto")
		})

		Convey("Should read values from fexp.toml", func() {
			err := filesystem.API().WriteFile("/config-test/fexp.toml", []byte("[history]\nlimit = 5\n"), 0o644)
			So(err, ShouldBeNil)

			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.HistoryLimit), ShouldEqual, 5)
		})

		Convey("Should bind environment variables", func() {
			t.Setenv("FEXP_SHELL_PROMPT", "$ ")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.ShellPrompt), ShouldEqual, "$ ")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("list.show_hidden"), ShouldEqual, "list_show_hidden")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.SearchFast]

		Convey("Env should carry the application prefix once", func() {
			So(field.Env(), ShouldEqual, "FEXP_SEARCH_FAST")
		})

		Convey("MarshalJSON should expose the type and default", func() {
			data, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["key"], ShouldEqual, key.SearchFast)
			So(decoded["type"], ShouldEqual, "bool")
			So(decoded["default"], ShouldEqual, true)
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.SearchFast)
		})
	})
}
