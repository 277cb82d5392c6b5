package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // MD2HTML_CONFIG: config file name or path
	Title          string // MD2HTML_TITLE: document <title>
	Style          string // MD2HTML_STYLE: CSS style name or path
	HighlightStyle string // MD2HTML_HIGHLIGHT_STYLE: chroma style, enables highlighting
	Workers        int    // MD2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":          true,
	"MD2HTML_TITLE":           true,
	"MD2HTML_STYLE":           true,
	"MD2HTML_HIGHLIGHT_STYLE": true,
	"MD2HTML_WORKERS":         true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("MD2HTML_CONFIG"),
		Title:          os.Getenv("MD2HTML_TITLE"),
		Style:          os.Getenv("MD2HTML_STYLE"),
		HighlightStyle: os.Getenv("MD2HTML_HIGHLIGHT_STYLE"),
	}

	// Parse int for workers
	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2HTML_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// CLI flags are applied afterwards by mergeFlags, so the resulting priority
// is: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Title != "" {
		cfg.Title = env.Title
	}
	if env.Style != "" {
		cfg.Style = env.Style
	}
	// Highlight style auto-enables highlighting
	if env.HighlightStyle != "" {
		cfg.Highlight.Style = env.HighlightStyle
		cfg.Highlight.Enabled = true
	}
}
