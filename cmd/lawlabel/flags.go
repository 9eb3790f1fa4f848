package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// columnSentinel detects if a --col-* flag was explicitly set.
// Since 0 is a valid column index (first spreadsheet column), we use an
// out-of-range sentinel to mean "not set".
const columnSentinel = -1

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// labelFlags holds label template flags.
type labelFlags struct {
	kind        string
	template    string
	templateDir string
	suffix      string
	svgOnly     bool
}

// columnFlags holds spreadsheet column mapping flags.
type columnFlags struct {
	identifier int
	material   int
	reg        int
	per        int
	firm       int
	origin     int
}

// pageFlags holds page dimension flags.
type pageFlags struct {
	width  float64
	height float64
}

// archiveFlags holds zip packaging flags.
type archiveFlags struct {
	zip       bool
	zipPrefix string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common  commonFlags
	output  string
	workers int
	timeout string
	label   labelFlags
	columns columnFlags
	page    pageFlags
	archive archiveFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addLabelFlags adds label template flags to a FlagSet.
func addLabelFlags(fs *flag.FlagSet, f *labelFlags) {
	fs.StringVarP(&f.kind, "kind", "k", "", "label kind: label2")
	fs.StringVar(&f.template, "template", "", "SVG template name or file path")
	fs.StringVar(&f.templateDir, "template-dir", "", "custom template directory")
	fs.StringVar(&f.suffix, "suffix", "", "output filename suffix (default: kind's suffix)")
	fs.BoolVar(&f.svgOnly, "svg-only", false, "output filled SVG, skip PDF")
}

// addColumnFlags adds column mapping flags to a FlagSet.
func addColumnFlags(fs *flag.FlagSet, f *columnFlags) {
	fs.IntVar(&f.identifier, "col-identifier", columnSentinel, "column index for the label identifier")
	fs.IntVar(&f.material, "col-material", columnSentinel, "column index for the material text")
	fs.IntVar(&f.reg, "col-reg", columnSentinel, "column index for the REG number")
	fs.IntVar(&f.per, "col-per", columnSentinel, "column index for the PER number")
	fs.IntVar(&f.firm, "col-firm", columnSentinel, "column index for the firm name")
	fs.IntVar(&f.origin, "col-origin", columnSentinel, "column index for the country of origin")
}

// addPageFlags adds page dimension flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.Float64Var(&f.width, "page-width", 0, "page width in inches (1.0-12.0)")
	fs.Float64Var(&f.height, "page-height", 0, "page height in inches (1.0-12.0)")
}

// addArchiveFlags adds zip packaging flags to a FlagSet.
func addArchiveFlags(fs *flag.FlagSet, f *archiveFlags) {
	fs.BoolVarP(&f.zip, "zip", "z", false, "bundle output into a timestamped zip")
	fs.StringVar(&f.zipPrefix, "zip-prefix", "", "zip archive name prefix (implies --zip)")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addLabelFlags(fs, &f.label)
	addColumnFlags(fs, &f.columns)
	addPageFlags(fs, &f.page)
	addArchiveFlags(fs, &f.archive)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
