package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/idilsaglam/tada/internal/app"
	"github.com/idilsaglam/tada/internal/script"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group  bool        // list todos grouped by pending/done
	Theme  string      // initial theme name
	Logger *log.Logger // dispatch trace, nil for none
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "demo":
		which := "all"
		if len(a) > 1 {
			ui.Fail("usage: tada demo [cart|todo|form|all]")
			return 2
		}
		if len(a) == 1 {
			which = a[0]
		}
		return doDemo(which, opt)

	case "replay":
		if len(a) < 1 || len(a) > 2 {
			ui.Fail("usage: tada replay <script.json> [out.json]")
			return 2
		}
		out := ""
		if len(a) == 2 {
			out = a[1]
		}
		return doReplay(a[0], out, opt)

	case "tui":
		return doTUI(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Err)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Out, `tada - reducer containers for a cart, a todo list and a form

Usage:
  tada [flags] <subcommand> [args]

Subcommands:
  demo [cart|todo|form|all]        Run the walkthrough scenarios
  replay <script.json> [out.json]  Dispatch a JSON action script, print the result
  tui                              Interactive front end
  help                             Show this help

Flags:
  -theme classic|neon|mono   Color theme (default $TADA_THEME or classic)
  -group                     Group todos by pending/done
  -color / -no-color         Force or disable ANSI colors
  -v                         Trace every dispatch on stderr

Examples:
  tada demo cart
  tada -theme neon replay examples/script.json
  tada tui
`)
}

func newApp(opt Options) (*app.App, bool) {
	a, err := app.New(app.Config{Theme: opt.Theme, Logger: opt.Logger})
	if err != nil {
		ui.Fail(err.Error())
		return nil, false
	}
	return a, true
}

// -------------- subcommand impls ----------------

func doReplay(path, out string, opt Options) int {
	s, err := script.Load(path)
	if err != nil {
		ui.Fail("load: " + err.Error())
		if errors.Is(err, os.ErrNotExist) {
			ui.Hint("pass the path of an existing JSON script")
		}
		return 1
	}
	a, ok := newApp(opt)
	if !ok {
		return 2
	}
	stop := ui.Follow(a.Theme)
	defer stop()

	res, err := script.Replay(a, s)
	if err != nil {
		ui.Fail("replay: " + err.Error())
		return 1
	}
	printSnapshot(res.Final, opt)
	for _, r := range res.Rejected {
		ui.Fail(fmt.Sprintf("%s[%d] %s: %s", r.Container, r.Index, r.Type, r.Err))
	}
	if out != "" {
		if err := script.Save(out, res); err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
		ui.OK("wrote " + out)
	}
	ui.OK(fmt.Sprintf("replayed %d of %d actions", res.Applied, s.Len()))
	return 0
}

func doTUI(opt Options) int {
	a, ok := newApp(opt)
	if !ok {
		return 2
	}
	if err := tui.Run(a); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// -------------- rendering helpers --------------

func printSnapshot(s app.Snapshot, opt Options) {
	ui.Panel(ui.CartLines(s.Cart))
	ui.Panel(ui.TodoLines(s.Todo, opt.Group))
	ui.Panel(ui.FormLines(s.Form))
}
