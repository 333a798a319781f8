package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/idilsaglam/tada/internal/cli"
	"github.com/idilsaglam/tada/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group todos by pending/done")
	themeName := flag.String("theme", os.Getenv("TADA_THEME"), "color theme: classic, neon or mono")
	forceColor := flag.Bool("color", false, "force ANSI colors even when not a TTY")
	noColor := flag.Bool("no-color", os.Getenv("NO_COLOR") != "", "disable ANSI colors")
	verbose := flag.Bool("v", false, "trace every dispatch on stderr")
	flag.Parse()

	ui.SetColorForcing(*forceColor, *noColor)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	opt := cli.Options{
		Group: *groupPending,
		Theme: *themeName,
	}
	if *verbose {
		opt.Logger = log.New(os.Stderr, "tada: ", log.Ltime|log.Lmicroseconds)
	}

	code := cli.Run(args, opt)
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
