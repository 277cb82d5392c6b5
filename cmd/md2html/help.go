package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html --source_file <path> --destination_file <path> [flags]")
	fmt.Fprintln(w, "       md2html [flags] <file.md>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown to a standalone HTML page.")
	fmt.Fprintln(w, "Positional files are written next to their source with an .html extension.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -s, --source_file <path>       Markdown source file")
	fmt.Fprintln(w, "  -d, --destination_file <path>  HTML destination file")
	fmt.Fprintln(w, "  -c, --config <name>            Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>              Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>                Document <title> text")
	fmt.Fprintln(w, "      --style[=<s>]              Style name, CSS file path, or CSS (default: default)")
	fmt.Fprintln(w, "      --no-style                 Disable CSS styling")
	fmt.Fprintln(w, "      --highlight                Highlight fenced code with a language tag")
	fmt.Fprintln(w, "      --highlight-style <s>      Chroma style name (implies --highlight)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                    Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                  Show detailed timing")
	fmt.Fprintln(w, "      --print-config             Print effective configuration and exit")
	fmt.Fprintln(w, "      --version                  Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG, MD2HTML_TITLE, MD2HTML_STYLE, MD2HTML_HIGHLIGHT_STYLE")
}
