package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-analyzer/internal/analyze"
	"github.com/jonathan/cv-analyzer/internal/config"
	"github.com/jonathan/cv-analyzer/internal/extract"
	"github.com/jonathan/cv-analyzer/internal/observability"
	"github.com/jonathan/cv-analyzer/internal/types"
)

var batchCommand = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Analyze multiple resumes against a target role",
	Long: `Analyzes every given resume file concurrently against the same target role
and prints a ranked summary. Files that fail extraction or analysis are
reported but do not stop the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatchCmd,
}

var (
	batchRole        string
	batchConcurrency int
	batchOutputDir   string
)

func init() {
	batchCommand.Flags().StringVarP(&batchRole, "role", "r", "", "Target role (see 'roles' command)")
	batchCommand.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum resumes analyzed in parallel")
	batchCommand.Flags().StringVar(&batchOutputDir, "output-dir", "", "Write per-resume JSON reports to this directory")

	_ = batchCommand.MarkFlagRequired("role")

	rootCmd.AddCommand(batchCommand)
}

type batchResult struct {
	File   string
	Report *types.AnalysisReport
	Err    error
}

func runBatchCmd(_ *cobra.Command, files []string) error {
	ctx := context.Background()

	role, err := types.ParseRole(batchRole)
	if err != nil {
		return err
	}

	if batchOutputDir != "" {
		if err := os.MkdirAll(batchOutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	cfg := config.Defaults()
	results := make([]batchResult, 0, len(files))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, file := range files {
		g.Go(func() error {
			report, err := analyzeOne(ctx, file, role, cfg.MinTextLength)
			mu.Lock()
			results = append(results, batchResult{File: file, Report: report, Err: err})
			mu.Unlock()
			// Per-file failures are reported in the summary, not fatal.
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Highest score first; failures sink to the bottom.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Err != nil || results[j].Err != nil {
			return results[j].Err != nil && results[i].Err == nil
		}
		return results[i].Report.ScoreInfo.Overall > results[j].Report.ScoreInfo.Overall
	})

	printBatchSummary(results)

	if batchOutputDir != "" {
		if err := writeBatchReports(results); err != nil {
			return err
		}
	}
	return nil
}

func analyzeOne(ctx context.Context, file string, role types.Role, minLength int) (*types.AnalysisReport, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	text := extract.Text(file, data)
	if text == "" {
		return nil, &analyze.UnsupportedFormatError{Filename: file}
	}
	return analyze.Run(ctx, analyze.Input{
		RawText: text,
		Role:    role,
	}, analyze.Options{MinTextLength: minLength})
}

func printBatchSummary(results []batchResult) {
	fmt.Printf("Analyzed %d resume(s)\n\n", len(results))
	for i, res := range results {
		if res.Err != nil {
			fmt.Printf("%2d. %-40s FAILED: %v\n", i+1, filepath.Base(res.File), res.Err)
			continue
		}
		fmt.Printf("%2d. %-40s %.1f  %s\n", i+1, filepath.Base(res.File),
			res.Report.ScoreInfo.Overall, observability.Verdict(res.Report.ScoreInfo.Overall))
	}
}

func writeBatchReports(results []batchResult) error {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		name := filepath.Base(res.File)
		out := filepath.Join(batchOutputDir, name[:len(name)-len(filepath.Ext(name))]+".json")
		data, err := json.MarshalIndent(res.Report.Export(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report for %s: %w", res.File, err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report for %s: %w", res.File, err)
		}
	}
	return nil
}
