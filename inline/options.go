package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fexp-cli/fexp/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Action selects the single operation an inline invocation performs.
type Action string

const (
	List   Action = "list"
	Search Action = "search"
	Perm   Action = "perm"
	Info   Action = "info"
)

// Actions returns every supported action in display order.
func Actions() []Action {
	return []Action{List, Search, Perm, Info}
}

// Picker narrows down search matches.
type Picker func(matches []string) []string

type Options struct {
	Out io.Writer
	// Dir is the directory relative paths are resolved against.
	Dir        string
	Action     Action
	Target     string
	Json       bool
	ShowHidden bool
	Picker     mo.Option[Picker]
}

// ParsePicker parses a match selector.
// Format: "first", "last", "all", "3", "1-4", "@substring@"
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "first":
		return func(matches []string) []string {
			if len(matches) == 0 {
				return matches
			}
			return matches[:1]
		}, nil
	case "last":
		return func(matches []string) []string {
			if len(matches) == 0 {
				return matches
			}
			return matches[len(matches)-1:]
		}, nil
	case "all":
		return func(matches []string) []string {
			return matches
		}, nil
	}

	// Range: "1-4"
	if from, to, found := strings.Cut(description, "-"); found {
		start, err1 := strconv.ParseUint(from, 10, 16)
		end, err2 := strconv.ParseUint(to, 10, 16)
		if err1 == nil && err2 == nil {
			return func(matches []string) []string {
				s := util.Min(start, uint64(len(matches)))
				e := util.Min(end+1, uint64(len(matches)))
				if s > e {
					return []string{}
				}
				return matches[s:e]
			}, nil
		}
	}

	// Substring: "@text@"
	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(matches []string) []string {
			return lo.Filter(matches, func(m string, _ int) bool {
				return strings.Contains(strings.ToLower(m), sub)
			})
		}, nil
	}

	// Single index: "3"
	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(matches []string) []string {
			if uint64(len(matches)) <= idx {
				return []string{}
			}
			return []string{matches[idx]}
		}, nil
	}

	return nil, fmt.Errorf("invalid match selector: %s", description)
}
