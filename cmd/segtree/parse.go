package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/revelaction/segtree/render"
)

// EngineOptions are the flags shared by the commands that analyse text.
type EngineOptions struct {
	Lang       string
	ConfigPath string
	DictPath   string
	Verbose    bool
}

type AnalyzeOptions struct {
	EngineOptions
	Format string
}

type ReplOptions struct {
	EngineOptions
	Format string
}

type StatOptions struct {
	EngineOptions
}

type ImportDictOptions struct {
	From   string
	Senses string
	To     string
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

// parseMainArgs returns the command and its arguments. Without a known
// command, all the arguments go to analyze.
func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("segtree", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if len(args) == 0 {
		return "analyze", nil, nil
	}

	switch args[0] {
	case "-h", "-help", "--help":
		fs.SetOutput(ui.Out)
		fs.Usage()
		return "", nil, flag.ErrHelp
	}

	if !slices.Contains(commands, args[0]) && args[0] != "complete" {
		return "analyze", args, nil
	}

	return args[0], args[1:], nil
}

func addEngineFlags(fs *flag.FlagSet, opts *EngineOptions) {
	fs.StringVar(&opts.Lang, "lang", "", "Analysis language code (default es, or SEGTREE_LANG)")
	fs.StringVar(&opts.Lang, "l", "", "alias for -lang")

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to the YAML analyzer configuration")
	fs.StringVar(&opts.ConfigPath, "c", "", "alias for -config")

	fs.StringVar(&opts.DictPath, "dict", "", "Path to the dictionary, text lexicon or SQLite file (.db)")

	fs.BoolVar(&opts.Verbose, "v", false, "Log debug messages")
}

func addFormatFlag(fs *flag.FlagSet, format *string) {
	*format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: format}
	fs.Var(formatFlag, "format", "Output format: "+strings.Join(render.SupportedFormats(), ", "))
	fs.Var(formatFlag, "f", "alias for -format")
}

// parseFlags parses args. Help goes to Out, errors and usage to Err.
func parseFlags(fs *flag.FlagSet, args []string, ui UI) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func parseAnalyzeArgs(args []string, ui UI) (AnalyzeOptions, []string, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts AnalyzeOptions
	addEngineFlags(fs, &opts.EngineOptions)
	addFormatFlag(fs, &opts.Format)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s [analyze] [options] [file ...]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Analyse text from the files, or stdin, and print the analysis of each sentence.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, nil, err
	}

	return opts, fs.Args(), nil
}

func parseReplArgs(args []string, ui UI) (ReplOptions, error) {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ReplOptions
	addEngineFlags(fs, &opts.EngineOptions)
	addFormatFlag(fs, &opts.Format)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s repl [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive analysis mode.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("repl command accepts no arguments")
	}

	return opts, nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, []string, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	addEngineFlags(fs, &opts.EngineOptions)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options] [file ...]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show statistics of the analysed text.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, nil, err
	}

	return opts, fs.Args(), nil
}

func parseImportDictArgs(args []string, ui UI) (ImportDictOptions, error) {
	fs := flag.NewFlagSet("import-dict", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportDictOptions
	fs.StringVar(&opts.From, "from", "", "Source text lexicon (dicc.src)")
	fs.StringVar(&opts.Senses, "senses", "", "Source senses file (senses.src)")
	fs.StringVar(&opts.To, "to", "", "Target SQLite database file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import-dict --from <dicc.src> [--senses <senses.src>] --to <sqlite_file>\n", os.Args[0])
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseBashArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("bash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s bash\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Output bash completion script.\n")
	}

	return parseFlags(fs, args, ui)
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s [command] [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Morphological, constituency and dependency analysis of text\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  analyze      Analyse text from files or stdin (default).\n")
		_, _ = fmt.Fprintf(output, "  repl         Enter interactive analysis mode.\n")
		_, _ = fmt.Fprintf(output, "  stat         Show statistics of the analysed text.\n")
		_, _ = fmt.Fprintf(output, "  import-dict  Import a text lexicon into SQLite.\n")
		_, _ = fmt.Fprintf(output, "  bash         Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  version      Show the version.\n")
		_, _ = fmt.Fprintf(output, "  help         Show help for a command.\n")
	}
}
