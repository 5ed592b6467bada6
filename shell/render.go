package shell

import (
	"fmt"
	"strings"

	"github.com/fexp-cli/fexp/color"
	"github.com/fexp-cli/fexp/constant"
	"github.com/fexp-cli/fexp/icon"
	"github.com/fexp-cli/fexp/log"
	"github.com/fexp-cli/fexp/style"
	"github.com/fexp-cli/fexp/util"
)

const separatorWidth = 36

func decorate(i icon.Icon, msg string) string {
	if glyph := icon.Get(i); glyph != "" {
		return glyph + " " + msg
	}
	return msg
}

func (s *Shell) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Shell) success(msg string) {
	s.println(decorate(icon.Success, style.Fg(color.Green)(msg)))
}

// fail prints msg and, when present, the underlying reason.
func (s *Shell) fail(msg string, err error) {
	line := decorate(icon.Fail, style.Fg(color.Red)(msg))
	if err != nil {
		log.Errorf("%s %s", msg, err)
		line += " " + style.Faint("("+err.Error()+")")
	}
	s.println(line)
}

func (s *Shell) failErr(err error) {
	log.Error(err)
	s.println(decorate(icon.Fail, style.Fg(color.Red)("Error: "+err.Error())))
}

func (s *Shell) usage(c *command) {
	s.println("Usage: " + c.usage)
}

func (s *Shell) unknown(name string) {
	s.println(constant.UnknownCommand)
	if suggestion, ok := closest(name).Get(); ok {
		s.println(style.Faint(fmt.Sprintf("Did you mean %q?", suggestion)))
	}
}

// separator spans the terminal, capped to the classic width.
func (s *Shell) separator() string {
	width := separatorWidth
	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		width = util.Min(w, separatorWidth)
	}
	return strings.Repeat(constant.Separator, width)
}
