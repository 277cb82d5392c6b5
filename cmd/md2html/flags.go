package main

import (
	"io"

	md2html "github.com/alnah/go-md2html"
	flag "github.com/spf13/pflag"
)

// commonFlags holds output control and config selection flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// ioFlags holds source and destination flags.
type ioFlags struct {
	source      string
	destination string
	workers     int
}

// documentFlags holds flags that shape the page frame.
type documentFlags struct {
	title          string
	style          string
	noStyle        bool
	highlight      bool
	highlightStyle string
}

// cliFlags holds every flag of the md2html command.
type cliFlags struct {
	common      commonFlags
	io          ioFlags
	document    documentFlags
	printConfig bool
	version     bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addIOFlags adds source and destination flags to a FlagSet.
func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.source, "source_file", "s", "", "markdown source file")
	fs.StringVarP(&f.destination, "destination_file", "d", "", "HTML destination file")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for positional files (0 = auto)")
}

// addDocumentFlags adds page frame flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document <title> text")
	fs.StringVar(&f.style, "style", "", "CSS style name, file path, or CSS content")
	fs.Lookup("style").NoOptDefVal = md2html.DefaultStyleName
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight fenced code with a language tag")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style name (implies --highlight)")
}

// parseFlags parses command flags and returns positional args.
// Parse errors are reported by the caller; pflag's own output goes to stderr.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	addIOFlags(fs, &f.io)
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration as YAML")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
