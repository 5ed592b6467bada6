package shell

import (
	"strings"

	"github.com/fexp-cli/fexp/constant"
	"github.com/fexp-cli/fexp/style"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
)

const (
	usageColumn = 24
	helpWidth   = 48
)

func (s *Shell) help(args []string) {
	shown := commands
	if len(args) > 0 {
		topic := args[0]
		shown = lo.Filter(commands, func(c *command, _ int) bool {
			return fuzzy.MatchFold(topic, c.usage) || fuzzy.MatchFold(topic, c.help)
		})

		if len(shown) == 0 {
			s.println("No commands match " + topic + ".")
			return
		}
	}

	separator := strings.Repeat(constant.Separator, separatorWidth)

	s.println()
	s.println(style.Title("Available Commands:"))
	s.println(separator)
	for _, c := range shown {
		s.println(helpLine(c))
	}
	s.println(separator)
}

func helpLine(c *command) string {
	lines := strings.Split(wordwrap.String(c.help, helpWidth-usageColumn), "\n")
	indent := strings.Repeat(" ", usageColumn+2)

	var b strings.Builder
	b.WriteString(padding.String(c.usage, usageColumn))
	b.WriteString("- ")
	b.WriteString(lines[0])
	for _, l := range lines[1:] {
		b.WriteString("\n" + indent + l)
	}
	return b.String()
}
