// Command dfamin reads one or more DFA descriptions in the §6.1 text
// format and prints each one's original and minimized form (§6.3).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/coregx/dfamin/automaton"
	"github.com/coregx/dfamin/dfatext"
	"github.com/coregx/dfamin/minimize"
)

type options struct {
	Files   goflags.StringSlice
	Verbose bool
	Silent  bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`dfamin minimizes deterministic finite automata given in a dense text format.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Files, "file", "f", nil, "DFA description file (repeatable; stdin if none given)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose diagnostics"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display DFA tables only, without banners or diagnostics"),
		flagSet.CallbackVar(printVersion, "version", "display dfamin version"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	// positional filenames beyond -f/--file
	opts.Files = append(opts.Files, flagSet.Args()...)

	return opts
}

func printVersion() {
	gologger.Info().Msgf("dfamin version %s", version)
	os.Exit(0)
}

const version = "0.1.0"

func main() {
	opts := parseFlags()

	if len(opts.Files) == 0 {
		if !fileutil.HasStdin() {
			gologger.Fatal().Msgf("no input files given and stdin is not piped")
		}
		if err := runFile(os.Stdin, "<stdin>"); err != nil {
			gologger.Fatal().Msgf("%v", err)
		}
		return
	}

	exitCode := 0
	for _, name := range opts.Files {
		f, err := os.Open(name)
		if err != nil {
			// I/O open failure: report and continue to the next file (§7).
			gologger.Error().Msgf("%s: %v", name, err)
			exitCode = 1
			continue
		}
		runErr := runFile(f, name)
		f.Close()
		if runErr != nil {
			// Malformed input / capacity errors are fatal and immediate (§7):
			// no partial results, abort the whole process.
			gologger.Fatal().Msgf("%s: %v", name, runErr)
		}
	}
	os.Exit(exitCode)
}

func runFile(r io.Reader, name string) error {
	gologger.Info().Msgf("=== %s: original DFA ===", name)

	d, err := dfatext.Parse(r)
	if err != nil {
		return err
	}

	printOriginal(d)

	out, err := minimize.Minimize(d, minimize.WithSweepHook(func(sweep, before, after int) {
		gologger.Verbose().Msgf("%s: sweep %d: %d classes -> %d classes", name, sweep, before, after)
	}))
	if err != nil {
		return err
	}

	gologger.Info().Msgf("=== %s: minimized DFA ===", name)
	if err := dfatext.Print(os.Stdout, out); err != nil {
		return err
	}
	gologger.Verbose().Msgf("%s: %d states -> %d states", name, d.NStates, out.NStates)
	return nil
}

func printOriginal(d *automaton.DFA) {
	if err := dfatext.Print(os.Stdout, d); err != nil {
		gologger.Error().Msgf("failed to print original DFA: %v", err)
	}
	fmt.Println()
}
