package inline

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fexp-cli/fexp/explorer"
	"github.com/fexp-cli/fexp/filesystem"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func tree() {
	filesystem.SetMemMapFs()
	fs := filesystem.API()
	lo.Must0(fs.MkdirAll("/data/a/b", 0o755))
	lo.Must0(fs.MkdirAll("/data/c", 0o755))
	lo.Must0(fs.WriteFile("/data/report.txt", []byte("top"), 0o640))
	lo.Must0(fs.WriteFile("/data/a/b/report.txt", []byte("deep"), 0o644))
	lo.Must0(fs.WriteFile("/data/c/report.txt", []byte("side"), 0o644))
}

func run(options *Options) (*Output, string, error) {
	var buf bytes.Buffer
	options.Out = &buf
	options.Dir = "/data"

	err := Run(options)
	if err != nil || !options.Json {
		return nil, buf.String(), err
	}

	var output Output
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		return nil, buf.String(), err
	}
	return &output, buf.String(), nil
}

func TestRun(t *testing.T) {
	Convey("Given a small tree", t, func() {
		tree()

		Convey("list as JSON reports entries with kinds", func() {
			output, _, err := run(&Options{Action: List, Json: true})
			So(err, ShouldBeNil)
			So(output.Action, ShouldEqual, List)
			So(output.Dir, ShouldEqual, "/data")
			So(lo.Map(output.Entries, func(e *explorer.Entry, _ int) string { return e.Name }), ShouldResemble, []string{"a", "c", "report.txt"})
		})

		Convey("list as text marks directories", func() {
			_, text, err := run(&Options{Action: List})
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "a/\nc/\nreport.txt\n")
		})

		Convey("search finds every match in order", func() {
			output, _, err := run(&Options{Action: Search, Target: "report.txt", Json: true})
			So(err, ShouldBeNil)
			So(output.Matches, ShouldResemble, []string{
				"/data/a/b/report.txt",
				"/data/c/report.txt",
				"/data/report.txt",
			})
		})

		Convey("search applies the picker", func() {
			picker := lo.Must(ParsePicker("last"))
			_, text, err := run(&Options{Action: Search, Target: "report.txt", Picker: mo.Some(picker)})
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "/data/report.txt\n")
		})

		Convey("search without matches prints nothing", func() {
			_, text, err := run(&Options{Action: Search, Target: "missing"})
			So(err, ShouldBeNil)
			So(text, ShouldBeEmpty)
		})

		Convey("perm reports the rwx string", func() {
			output, _, err := run(&Options{Action: Perm, Target: "report.txt", Json: true})
			So(err, ShouldBeNil)
			So(output.Permissions.Name, ShouldEqual, "report.txt")
			So(output.Permissions.Mode, ShouldEqual, "rw-r-----")

			_, text, err := run(&Options{Action: Perm, Target: "c/report.txt"})
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "rw-r--r--\n")
		})

		Convey("info describes the target", func() {
			output, _, err := run(&Options{Action: Info, Target: "a/b/report.txt", Json: true})
			So(err, ShouldBeNil)
			So(output.Info.Size, ShouldEqual, 4)
			So(output.Info.MimeType, ShouldStartWith, "text/plain")

			_, text, err := run(&Options{Action: Info, Target: "a"})
			So(err, ShouldBeNil)
			So(text, ShouldContainSubstring, "type\tinode/directory")
		})

		Convey("actions other than list need a target", func() {
			_, _, err := run(&Options{Action: Perm})
			So(errors.Is(err, errTargetRequired), ShouldBeTrue)
		})

		Convey("unknown actions are rejected", func() {
			_, _, err := run(&Options{Action: "fly", Target: "x"})
			So(err, ShouldNotBeNil)
			for _, action := range Actions() {
				So(err.Error(), ShouldContainSubstring, string(action))
			}
		})

		Convey("a missing target is an error", func() {
			_, _, err := run(&Options{Action: Info, Target: "ghost"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParsePicker(t *testing.T) {
	matches := []string{"/x/one", "/x/two", "/x/three"}

	Convey("ParsePicker", t, func() {
		Convey("first and last", func() {
			So(lo.Must(ParsePicker("first"))(matches), ShouldResemble, []string{"/x/one"})
			So(lo.Must(ParsePicker("last"))(matches), ShouldResemble, []string{"/x/three"})
			So(lo.Must(ParsePicker("first"))(nil), ShouldBeEmpty)
		})

		Convey("index and range", func() {
			So(lo.Must(ParsePicker("1"))(matches), ShouldResemble, []string{"/x/two"})
			So(lo.Must(ParsePicker("7"))(matches), ShouldBeEmpty)
			So(lo.Must(ParsePicker("1-9"))(matches), ShouldResemble, []string{"/x/two", "/x/three"})
		})

		Convey("substring", func() {
			So(lo.Must(ParsePicker("@TW@"))(matches), ShouldResemble, []string{"/x/two"})
		})

		Convey("garbage is rejected", func() {
			_, err := ParsePicker("sideways")
			So(err, ShouldNotBeNil)
		})
	})
}
