package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/yamlutil"
	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrMissingPaths     = errors.New("--source_file and --destination_file are required")
	ErrMixedInput       = errors.New("positional files cannot be combined with --source_file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// FileConverter is the interface for the conversion service.
type FileConverter interface {
	ConvertFile(src, dst string) (*md2html.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ FileConverter = (*md2html.Converter)(nil)

// run parses args (including the program name) and performs the conversion.
func run(args []string, env *Environment) error {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return nil
	}
	if err != nil {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return nil
	}

	if err := validateWorkers(flags.io.workers); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// Priority: CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.printConfig {
		out, err := yamlutil.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	jobs, err := resolveJobs(flags, positional)
	if err != nil {
		printUsage(env.Stderr)
		return err
	}

	conv, err := buildConverter(cfg)
	if err != nil {
		return withConverterHint(err)
	}

	workers := resolveWorkers(flags.io.workers, envCfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", min(workers, len(jobs)))
	}

	results := convertBatch(conv, jobs, workers, env)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount == 0 {
		return nil
	}
	if len(results) == 1 {
		return results[0].Err
	}
	return fmt.Errorf("%d conversion(s) failed", failedCount)
}

// loadConfig loads the config named by the flag, falling back to
// MD2HTML_CONFIG. Without either, defaults are used.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		err = fmt.Errorf("loading config: %w", err)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.document.title != "" {
		cfg.Title = flags.document.title
	}

	if flags.document.noStyle {
		cfg.Style = ""
	} else if flags.document.style != "" {
		cfg.Style = flags.document.style
	}

	if flags.document.highlight {
		cfg.Highlight.Enabled = true
	}
	// Highlight style implies highlighting
	if flags.document.highlightStyle != "" {
		cfg.Highlight.Style = flags.document.highlightStyle
		cfg.Highlight.Enabled = true
	}
}

// buildConverter creates the library converter from the effective config.
func buildConverter(cfg *config.Config) (*md2html.Converter, error) {
	var opts []md2html.Option
	if cfg.Title != "" {
		opts = append(opts, md2html.WithTitle(cfg.Title))
	}
	if cfg.Style != "" {
		opts = append(opts, md2html.WithStyle(cfg.Style))
	}
	if cfg.Highlight.Enabled {
		opts = append(opts, md2html.WithHighlighting(cfg.Highlight.Style))
	}
	return md2html.NewConverter(opts...)
}

// withConverterHint appends a hint for converter setup errors.
func withConverterHint(err error) error {
	switch {
	case errors.Is(err, md2html.ErrStyleNotFound):
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(md2html.Styles()))
	case errors.Is(err, md2html.ErrHighlightStyleNotFound):
		return fmt.Errorf("%w%s", err, hints.ForHighlightStyle(md2html.HighlightStyles()))
	default:
		return err
	}
}

// resolveJobs builds the list of files to convert from flags and
// positional arguments.
func resolveJobs(flags *cliFlags, positional []string) ([]FileToConvert, error) {
	src, dst := flags.io.source, flags.io.destination

	if len(positional) > 0 {
		if src != "" || dst != "" {
			return nil, fmt.Errorf("%w: %w", ErrUsage, ErrMixedInput)
		}
		jobs := make([]FileToConvert, 0, len(positional))
		for _, p := range positional {
			out, err := htmlOutputPath(p)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, FileToConvert{InputPath: p, OutputPath: out})
		}
		return jobs, nil
	}

	if src == "" || dst == "" {
		return nil, fmt.Errorf("%w: %w", ErrUsage, ErrMissingPaths)
	}
	return []FileToConvert{{InputPath: src, OutputPath: dst}}, nil
}

// htmlOutputPath replaces a Markdown extension with .html.
func htmlOutputPath(path string) (string, error) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".md", ".markdown":
		return strings.TrimSuffix(path, ext) + ".html", nil
	default:
		return "", fmt.Errorf("%w: %w: %s", ErrUsage, ErrInvalidExtension, path)
	}
}
