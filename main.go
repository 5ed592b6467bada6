// Package main is the entry point for the fexp file explorer.
package main

import (
	"github.com/fexp-cli/fexp/cmd"
	"github.com/fexp-cli/fexp/config"
	"github.com/fexp-cli/fexp/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
