// Package perm renders and applies POSIX rwx permission bits.
//
// Applying a mode goes through a Changer: Posix sets the bits on the backend,
// Simulated only verifies the target exists, for platforms without mode bits.
package perm

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/fexp-cli/fexp/constant"
	"github.com/fexp-cli/fexp/key"
	"github.com/fexp-cli/fexp/log"
	"github.com/spf13/viper"
)

// Strategy names accepted by the perm.strategy setting.
const (
	StrategyAuto     = "auto"
	StrategyPosix    = "posix"
	StrategySimulate = "simulate"
)

// ErrInvalidMode is returned for mode strings that are not octal rwx triplets.
var ErrInvalidMode = errors.New("invalid mode")

// Changer applies a permission mode to a path.
type Changer interface {
	Chmod(path string, mode os.FileMode) error
	// Simulated reports whether Chmod leaves access control untouched.
	Simulated() bool
}

// Format renders the owner, group and other triplets of mode as a 9-character string.
func Format(mode os.FileMode) string {
	const rwx = "rwxrwxrwx"

	out := []byte("---------")
	for i := range out {
		if mode&(1<<uint(8-i)) != 0 {
			out[i] = rwx[i]
		}
	}
	return string(out)
}

// ParseOctal parses "644", "0644" or "0o644" into a mode. Bits outside 0777 are rejected.
func ParseOctal(s string) (os.FileMode, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0O")
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}

	n, err := strconv.ParseUint(digits, 8, 32)
	if err != nil || n > 0o777 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return os.FileMode(n), nil
}

// New returns the Changer for a strategy name on the given GOOS.
func New(strategy, goos string) (Changer, error) {
	switch strategy {
	case StrategyAuto, "":
		if goos == constant.Windows {
			return Simulated{}, nil
		}
		return Posix{}, nil
	case StrategyPosix:
		return Posix{}, nil
	case StrategySimulate:
		return Simulated{}, nil
	default:
		return nil, fmt.Errorf("unknown permission strategy %q", strategy)
	}
}

// FromConfig resolves the Changer configured by perm.strategy, falling back to auto.
func FromConfig() Changer {
	c, err := New(viper.GetString(key.PermStrategy), runtime.GOOS)
	if err != nil {
		log.Warn(err)
		c, _ = New(StrategyAuto, runtime.GOOS)
	}
	return c
}
