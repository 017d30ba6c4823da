// Package maincmd implements the lox command-line entry point: argument
// parsing, subcommand dispatch, and exit-code plumbing.
package maincmd

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s <command> <file>
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s <command> <file>
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox programming language.

The <command> can be one of:
       tokenize FILE             Scan FILE and print one token per line.
       parse FILE                Parse FILE as a single expression and
                                 print its parenthesized form.
       evaluate FILE             Parse FILE as a single expression,
                                 evaluate it, and print its value.
       run FILE                  Parse, resolve and run FILE as a
                                 complete program.

With no <command>, %[1]s starts an interactive REPL reading statements from
stdin.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

Exit codes: 0 success, 65 static error (scanner/parser/resolver), 70
runtime error.
`, binName)
)

// Cmd is the root command, parsed once per process invocation.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args   []string
	isRepl bool
	cmdFn  func(context.Context, mainer.Stdio, []string) mainer.ExitCode
}

func (c *Cmd) SetArgs(args []string)      { c.args = args }
func (c *Cmd) SetFlags(_ map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		c.isRepl = true
		return nil
	}

	cmdName := c.args[0]
	cmds := buildCmds(c)
	c.cmdFn = cmds[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}
	if len(c.args[1:]) != 1 {
		return fmt.Errorf("%s: exactly one file must be provided", cmdName)
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: strings.ToUpper(binName) + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if c.isRepl {
		return RunREPL(ctx, stdio)
	}
	return c.cmdFn(ctx, stdio, c.args[1:])
}

// buildCmds discovers the Cmd methods that implement a subcommand: those
// taking a context.Context, a mainer.Stdio and a []string, and returning a
// mainer.ExitCode.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) mainer.ExitCode {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) mainer.ExitCode)

	exitCodeType := reflect.TypeOf(mainer.Success)
	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if mt.Out(0) != exitCodeType {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) mainer.ExitCode)
	}
	return cmds
}
