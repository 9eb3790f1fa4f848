package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lawlabel <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate     Generate law labels from spreadsheet datasets")
	fmt.Fprintln(w, "  init         Write a starter config file")
	fmt.Fprintln(w, "  doctor       Check system requirements")
	fmt.Fprintln(w, "  completion   Generate shell completion scripts")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Passing a dataset file directly runs generate:")
	fmt.Fprintln(w, "  lawlabel orders.xlsx")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'lawlabel help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lawlabel generate <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate law labels from spreadsheet datasets.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Dataset file (.xlsx, .xlsm, .csv) or directory")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: current directory)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Label:")
	fmt.Fprintln(w, "  -k, --kind <s>            Label kind: label2")
	fmt.Fprintln(w, "      --template <s>        SVG template name or file path")
	fmt.Fprintln(w, "      --template-dir <dir>  Custom template directory")
	fmt.Fprintln(w, "      --suffix <s>          Output filename suffix")
	fmt.Fprintln(w, "      --svg-only            Output filled SVG, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Columns (zero-based spreadsheet indices):")
	fmt.Fprintln(w, "      --col-identifier <n>  Label identifier column (default 0)")
	fmt.Fprintln(w, "      --col-material <n>    Material text column (default 1)")
	fmt.Fprintln(w, "      --col-reg <n>         REG number column (default 2)")
	fmt.Fprintln(w, "      --col-per <n>         PER number column (default 3)")
	fmt.Fprintln(w, "      --col-firm <n>        Firm name column (default 4)")
	fmt.Fprintln(w, "      --col-origin <n>      Origin country column (default 5)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --page-width <f>      Page width in inches (1.0-12.0, default 4.0)")
	fmt.Fprintln(w, "      --page-height <f>     Page height in inches (1.0-12.0, default 6.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Archive:")
	fmt.Fprintln(w, "  -z, --zip                 Bundle output into a timestamped zip")
	fmt.Fprintln(w, "      --zip-prefix <s>      Zip archive name prefix (implies --zip)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lawlabel init [path]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a starter config file (default: lawlabel.yaml).")
	fmt.Fprintln(w, "Refuses to overwrite an existing file.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: lawlabel doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that Chrome and the label templates are available.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: lawlabel version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: lawlabel help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
