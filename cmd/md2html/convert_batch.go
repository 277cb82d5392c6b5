package main

import (
	"errors"
	"fmt"
	"sync"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/hints"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Stats      md2html.Stats
	Err        error
	Duration   time.Duration
}

// convertBatch converts files concurrently. Results keep the input order.
func convertBatch(conv FileConverter, files []FileToConvert, workers int, env *Environment) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = convertFile(conv, files[idx], env)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(conv FileConverter, f FileToConvert, env *Environment) ConversionResult {
	start := env.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	convResult, err := conv.ConvertFile(f.InputPath, f.OutputPath)
	result.Duration = env.Now().Sub(start)
	if err != nil {
		result.Err = withFileHint(err, f)
		return result
	}

	result.Stats = convResult.Stats
	return result
}

// withFileHint appends a hint for read and write failures.
func withFileHint(err error, f FileToConvert) error {
	switch {
	case errors.Is(err, md2html.ErrReadMarkdown):
		return fmt.Errorf("%w%s", err, hints.ForSourceFile(f.InputPath))
	case errors.Is(err, md2html.ErrWriteHTML):
		return fmt.Errorf("%w%s", err, hints.ForDestination(f.OutputPath))
	default:
		return err
	}
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count.
// A single failed conversion is left for the caller to report.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
			printStats(env, r.Stats)
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// printStats writes the per-kind line counts of one conversion.
func printStats(env *Environment, s md2html.Stats) {
	fmt.Fprintf(env.Stdout, "  %d lines: %d headings, %d list items, %d quoted, %d paragraphs\n",
		s.Lines, s.Headings, s.ListItems, s.BlockquoteLines, s.Paragraphs)
	if s.CodeBlocks > 0 {
		fmt.Fprintf(env.Stdout, "  %d code blocks (%d lines, %d highlighted)\n",
			s.CodeBlocks, s.CodeLines, s.Highlighted)
	}
}
