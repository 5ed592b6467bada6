package log

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fexp-cli/fexp/filesystem"
	"github.com/fexp-cli/fexp/key"
	"github.com/fexp-cli/fexp/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	_ = os.Setenv(where.EnvConfigPath, "/log-test")
}

func TestSetup(t *testing.T) {
	Convey("Given logging configuration", t, func() {
		Convey("When logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Convey("No log file is created", func() {
				entries := lo.Must(filesystem.API().ReadDir(where.Logs()))
				So(entries, ShouldBeEmpty)
			})
		})

		Convey("When logging is enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			defer viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Command("ls", "", "/tmp")
			Errorf("failed: %s", "boom")

			Convey("Entries are appended to the daily file", func() {
				path := filepath.Join(where.Logs(), fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
				data := lo.Must(filesystem.API().ReadFile(path))
				So(string(data), ShouldContainSubstring, "dispatch")
				So(string(data), ShouldContainSubstring, "failed: boom")
			})
		})
	})
}
