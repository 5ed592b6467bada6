package shell

import (
	"github.com/fexp-cli/fexp/key"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// maxSuggestDistance is the largest edit distance still worth suggesting.
const maxSuggestDistance = 2

// closest returns the command name nearest to name, if any is close enough.
func closest(name string) mo.Option[string] {
	if name == "" || !viper.GetBool(key.ShellSuggest) {
		return mo.None[string]()
	}

	best := lo.MinBy(lo.Keys(lookup), func(a, b string) bool {
		da, db := levenshtein.Distance(name, a), levenshtein.Distance(name, b)
		if da == db {
			return a < b
		}
		return da < db
	})

	if d := levenshtein.Distance(name, best); d == 0 || d > maxSuggestDistance {
		return mo.None[string]()
	}
	return mo.Some(best)
}
