package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	lawlabel "github.com/alnah/go-lawlabel"
	"github.com/alnah/go-lawlabel/internal/archive"
	"github.com/alnah/go-lawlabel/internal/config"
	"github.com/alnah/go-lawlabel/internal/dataset"
)

// generateSettings holds everything resolved from flags, env vars, and
// config before the pool is created. Generator options are fixed at
// construction, so all resolution happens before NewGeneratorPool.
type generateSettings struct {
	inputPath    string
	outputDir    string
	template     string // resolved SVG content
	templateName string // name or path, for messages
	svgOnly      bool
	zip          bool
	zipPrefix    string
	quiet        bool
	verbose      bool
	mapping      lawlabel.FieldMapping
	options      []lawlabel.Option
}

// runGenerateCommand parses flags, builds the generator pool, and runs
// generation. Returns a process exit code.
func runGenerateCommand(args []string, env *Environment) int {
	flags, positional, err := parseGenerateFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	settings, err := resolveGenerateSettings(positional, flags, envCfg, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, errorHint(err))
		return exitCodeFor(err)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, errorHint(err))
		return exitCodeFor(err)
	}

	poolSize := lawlabel.ResolvePoolSize(workers)
	if settings.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}

	pool := lawlabel.NewGeneratorPool(poolSize, settings.options...)
	defer pool.Close()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runGenerate(ctx, settings, &poolAdapter{pool: pool}, env); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, errorHint(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// resolveGenerateSettings resolves all generation parameters.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveGenerateSettings(positional []string, flags *generateFlags, envCfg *envConfig, env *Environment) (*generateSettings, error) {
	// Load configuration
	cfg := config.DefaultConfig()
	configPath := flags.common.config
	if configPath == "" {
		configPath = envCfg.ConfigPath
	}
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	// Env vars fill config gaps, then CLI flags win
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	timeout, err := resolveTimeoutWithEnv(flags.timeout, envCfg.Timeout, cfg.Render.Timeout)
	if err != nil {
		return nil, err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return nil, err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	kind, err := cfg.Kind()
	if err != nil {
		return nil, err
	}

	template, templateName, err := resolveTemplate(cfg, kind, env)
	if err != nil {
		return nil, err
	}

	if flags.common.verbose {
		if missing := lawlabel.MissingPlaceholders(template); len(missing) > 0 {
			fmt.Fprintf(env.Stderr, "warning: template %s is missing placeholders: %s\n",
				templateName, strings.Join(missing, ", "))
		}
	}

	mapping := buildFieldMapping(flags, cfg)

	options, err := buildGeneratorOptions(cfg, kind, mapping, timeout)
	if err != nil {
		return nil, err
	}

	zipPrefix := cfg.Archive.Prefix
	if zipPrefix == "" {
		zipPrefix = kind.ZipPrefix
	}

	return &generateSettings{
		inputPath:    inputPath,
		outputDir:    outputDir,
		template:     template,
		templateName: templateName,
		svgOnly:      flags.label.svgOnly,
		zip:          cfg.Archive.Enabled,
		zipPrefix:    zipPrefix,
		quiet:        flags.common.quiet,
		verbose:      flags.common.verbose,
		mapping:      mapping,
		options:      options,
	}, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Column flags are resolved separately in buildFieldMapping since they
// override per column, not as a whole mapping.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	// Label flags
	if flags.label.kind != "" {
		cfg.Label.Kind = flags.label.kind
	}
	if flags.label.template != "" {
		cfg.Label.Template = flags.label.template
	}
	if flags.label.suffix != "" {
		cfg.Label.Suffix = flags.label.suffix
	}
	if flags.label.templateDir != "" {
		cfg.Assets.BasePath = flags.label.templateDir
	}

	// Page flags
	if flags.page.width > 0 {
		cfg.Page.Width = flags.page.width
	}
	if flags.page.height > 0 {
		cfg.Page.Height = flags.page.height
	}

	// Archive flags
	if flags.archive.zip {
		cfg.Archive.Enabled = true
	}
	if flags.archive.zipPrefix != "" {
		cfg.Archive.Prefix = flags.archive.zipPrefix
		cfg.Archive.Enabled = true
	}
}

// resolveTimeoutWithEnv resolves the PDF timeout from flag, env, and config.
// Priority: flag > env > config. Returns 0 when none is set, which means
// the library default applies.
func resolveTimeoutWithEnv(flagValue string, envValue time.Duration, configValue string) (time.Duration, error) {
	if flagValue != "" {
		return parseTimeout(flagValue)
	}
	if envValue > 0 {
		return envValue, nil
	}
	if configValue != "" {
		return parseTimeout(configValue)
	}
	return 0, nil
}

// parseTimeout parses a duration string and validates it is positive.
func parseTimeout(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %v", value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %v", d)
	}
	return d, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if cfg.Output.DefaultDir != "" {
		return cfg.Output.DefaultDir
	}
	return "."
}

// resolveTemplate loads the SVG template content. A value containing a path
// separator or a .svg extension is read as a file; otherwise it is treated
// as a template name for the loader.
func resolveTemplate(cfg *config.Config, kind config.LabelKind, env *Environment) (content, name string, err error) {
	name = cfg.Label.Template
	if name == "" {
		name = kind.Template
	}

	if isTemplatePath(name) {
		data, err := os.ReadFile(name) // #nosec G304 -- user-provided path
		if err != nil {
			return "", "", fmt.Errorf("reading template %s: %w", name, err)
		}
		content = string(data)
	} else {
		loader := env.Templates
		if loader == nil || cfg.Assets.BasePath != "" {
			loader, err = lawlabel.NewTemplateLoader(cfg.Assets.BasePath)
			if err != nil {
				return "", "", err
			}
		}
		content, err = loader.LoadTemplate(name)
		if err != nil {
			return "", "", err
		}
	}

	if strings.TrimSpace(content) == "" {
		return "", "", fmt.Errorf("%w: template %s", lawlabel.ErrEmptyTemplate, name)
	}
	return content, name, nil
}

// isTemplatePath returns true if the value looks like a file path rather
// than a template name.
func isTemplatePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.HasSuffix(s, ".svg")
}

// buildFieldMapping resolves the column mapping from defaults, config, and
// flags. A config mapping replaces the default wholesale; per-column flags
// override individual fields last.
func buildFieldMapping(flags *generateFlags, cfg *config.Config) lawlabel.FieldMapping {
	m := lawlabel.DefaultFieldMapping()

	if !cfg.Dataset.Columns.IsZero() {
		m = lawlabel.FieldMapping{
			Identifier:   cfg.Dataset.Columns.Identifier,
			MaterialText: cfg.Dataset.Columns.MaterialText,
			RegNumber:    cfg.Dataset.Columns.RegNumber,
			PerNumber:    cfg.Dataset.Columns.PerNumber,
			Firm:         cfg.Dataset.Columns.Firm,
			Origin:       cfg.Dataset.Columns.Origin,
		}
	}

	if flags.columns.identifier >= 0 {
		m.Identifier = flags.columns.identifier
	}
	if flags.columns.material >= 0 {
		m.MaterialText = flags.columns.material
	}
	if flags.columns.reg >= 0 {
		m.RegNumber = flags.columns.reg
	}
	if flags.columns.per >= 0 {
		m.PerNumber = flags.columns.per
	}
	if flags.columns.firm >= 0 {
		m.Firm = flags.columns.firm
	}
	if flags.columns.origin >= 0 {
		m.Origin = flags.columns.origin
	}

	return m
}

// buildGeneratorOptions assembles generator options from resolved settings.
func buildGeneratorOptions(cfg *config.Config, kind config.LabelKind, mapping lawlabel.FieldMapping, timeout time.Duration) ([]lawlabel.Option, error) {
	opts := []lawlabel.Option{lawlabel.WithFieldMapping(mapping)}

	suffix := cfg.Label.Suffix
	if suffix == "" {
		suffix = kind.Suffix
	}
	if suffix != "" {
		opts = append(opts, lawlabel.WithFilenameSuffix(suffix))
	}

	if cfg.Page.Width > 0 || cfg.Page.Height > 0 {
		page := lawlabel.PageSize{Width: cfg.Page.Width, Height: cfg.Page.Height}
		if page.Width == 0 {
			page.Width = lawlabel.DefaultPageWidth
		}
		if page.Height == 0 {
			page.Height = lawlabel.DefaultPageHeight
		}
		if err := page.Validate(); err != nil {
			return nil, err
		}
		opts = append(opts, lawlabel.WithPageSize(page))
	}

	if timeout > 0 {
		opts = append(opts, lawlabel.WithTimeout(timeout))
	}

	return opts, nil
}

// runGenerate orchestrates the pipeline: discover datasets, generate labels
// row by row, and write documents or a zip archive.
func runGenerate(ctx context.Context, settings *generateSettings, pool Pool, env *Environment) error {
	datasets, err := discoverDatasets(settings.inputPath)
	if err != nil {
		return fmt.Errorf("discovering datasets: %w", err)
	}
	if len(datasets) == 0 {
		return fmt.Errorf("no dataset files found in %s", settings.inputPath)
	}

	multi := len(datasets) > 1

	var entries []archive.Entry
	var totalFailed int
	var firstFailure error

	for _, dsPath := range datasets {
		table, err := dataset.Load(dsPath)
		if err != nil {
			return fmt.Errorf("loading dataset %s: %w", dsPath, err)
		}
		if err := settings.mapping.Validate(table.Width()); err != nil {
			return fmt.Errorf("dataset %s: %w", dsPath, err)
		}

		start := time.Now()
		rowResults := generateBatch(ctx, pool, settings.template, settings.svgOnly, table.Rows)
		result := lawlabel.CollectResult(rowResults)
		elapsed := time.Since(start)

		for _, warning := range result.Warnings {
			fmt.Fprintf(env.Stderr, "warning: %s: %s\n", dsPath, warning)
		}
		printRowFailures(rowResults, dsPath, env)
		totalFailed += result.Failed
		if firstFailure == nil {
			firstFailure = firstRowError(rowResults)
		}

		stem := datasetStem(dsPath)
		if settings.zip {
			for _, doc := range result.Documents {
				name := doc.Name
				if multi {
					name = path.Join(stem, doc.Name)
				}
				entries = append(entries, archive.Entry{Name: name, Data: doc.Data})
			}
		} else {
			destDir := settings.outputDir
			if multi {
				destDir = filepath.Join(settings.outputDir, stem)
			}
			if err := writeDocuments(destDir, result.Documents, settings.quiet, env); err != nil {
				return err
			}
		}

		printDatasetSummary(dsPath, result, elapsed, settings, env)
	}

	if settings.zip {
		if len(entries) == 0 {
			fmt.Fprintln(env.Stderr, "no labels generated, skipping archive")
		} else {
			zipPath := filepath.Join(settings.outputDir, archive.TimestampedName(settings.zipPrefix, env.Now()))
			if err := writeArchive(zipPath, entries, settings.quiet, env); err != nil {
				return err
			}
		}
	}

	if totalFailed > 0 {
		// exitCodeFor and errorHint match on wrapped causes, so the
		// summary carries the first row error.
		return fmt.Errorf("%d row(s) failed: %w", totalFailed, firstFailure)
	}
	return nil
}

// firstRowError returns the earliest per-row failure, or nil.
func firstRowError(results []lawlabel.RowResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printRowFailures reports failed rows to stderr.
func printRowFailures(results []lawlabel.RowResult, dsPath string, env *Environment) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s row %d: %v\n", dsPath, r.Index, r.Err)
		}
	}
}

// printDatasetSummary prints per-dataset counts unless quiet. Single-row
// datasets stay silent beyond the per-file Created lines.
func printDatasetSummary(dsPath string, result *lawlabel.Result, elapsed time.Duration, settings *generateSettings, env *Environment) {
	if settings.quiet || result.Rows <= 1 {
		return
	}
	line := fmt.Sprintf("%s: %d generated, %d skipped, %d failed",
		dsPath, len(result.Documents), result.Skipped, result.Failed)
	if settings.verbose {
		line += fmt.Sprintf(" (%v)", elapsed.Round(time.Millisecond))
	}
	fmt.Fprintf(env.Stdout, "\n%s\n", line)
}
