// Command lox is a tree-walking interpreter for the Lox programming
// language, with tokenize/parse/evaluate/run subcommands.
package main

import (
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/internal/maincmd"
)

var (
	// placeholder values, replaced on build
	version   = "{v}" // must be N.N[.N]
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
