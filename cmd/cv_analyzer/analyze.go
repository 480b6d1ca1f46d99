package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-analyzer/internal/analyze"
	"github.com/jonathan/cv-analyzer/internal/config"
	"github.com/jonathan/cv-analyzer/internal/extract"
	"github.com/jonathan/cv-analyzer/internal/fetch"
	"github.com/jonathan/cv-analyzer/internal/llm"
	"github.com/jonathan/cv-analyzer/internal/observability"
	"github.com/jonathan/cv-analyzer/internal/scoring"
	"github.com/jonathan/cv-analyzer/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a target role",
	Long: `Scores a resume file (.pdf, .docx, .txt, .md) against a target role using
categorized keyword matching, with optional TF-IDF similarity blending against
a job description or fully LLM-delegated scoring.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeFile       string
	analyzeRole       string
	analyzeJobDesc    string
	analyzeJobURL     string
	analyzeStrategy   string
	analyzeMinLength  int
	analyzeAPIKey     string
	analyzeOutput     string
	analyzeVerbose    bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to resume file (.pdf, .docx, .txt, .md)")
	analyzeCommand.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target role (see 'roles' command)")
	analyzeCommand.Flags().StringVarP(&analyzeJobDesc, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	analyzeCommand.Flags().StringVarP(&analyzeStrategy, "strategy", "s", "", "Scoring strategy: keyword, similarity, or llm")
	analyzeCommand.Flags().IntVar(&analyzeMinLength, "min-length", 0, "Minimum resume text length accepted")
	analyzeCommand.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the JSON report to this path")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed category breakdowns")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	_ = analyzeCommand.MarkFlagRequired("file")
	_ = analyzeCommand.MarkFlagRequired("role")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	role, err := types.ParseRole(analyzeRole)
	if err != nil {
		return err
	}

	text, err := readResume(analyzeFile)
	if err != nil {
		return err
	}

	jobDesc, err := resolveJobDescription(ctx)
	if err != nil {
		return err
	}

	strategy, cleanup, err := resolveStrategy(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Strategy == scoring.StrategyLLM {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.LLMTimeoutSeconds)*time.Second)
		defer cancel()
	}

	opts := analyze.Options{
		MinTextLength: cfg.MinTextLength,
		Strategy:      strategy,
	}
	if cfg.Verbose {
		opts.OnProgress = func(ev analyze.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", ev.State, ev.Message)
		}
	}

	report, err := analyze.Run(ctx, analyze.Input{
		RawText:        text,
		Role:           role,
		JobDescription: jobDesc,
	}, opts)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReport(report)

	if analyzeOutput != "" {
		if err := writeReport(analyzeOutput, report); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", analyzeOutput)
	}
	return nil
}

// resolveConfig loads the optional config file and applies CLI overrides
// on top, then fills remaining gaps with built-in defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = analyzeStrategy
	}
	if cmd.Flags().Changed("min-length") {
		cfg.MinTextLength = analyzeMinLength
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// readResume loads and extracts text from a resume file.
func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	text := extract.Text(path, data)
	if text == "" {
		return "", &analyze.UnsupportedFormatError{Filename: path}
	}
	return text, nil
}

// resolveJobDescription reads the job description from a file or fetches
// it from a URL. Both flags empty means no job description.
func resolveJobDescription(ctx context.Context) (string, error) {
	if analyzeJobDesc != "" && analyzeJobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}
	if analyzeJobDesc != "" {
		data, err := os.ReadFile(analyzeJobDesc)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}
	if analyzeJobURL != "" {
		return fetch.JobDescription(ctx, analyzeJobURL, fetch.DefaultOptions())
	}
	return "", nil
}

// resolveStrategy builds the scoring strategy named in the config. The
// returned cleanup releases the LLM client when one was created.
func resolveStrategy(ctx context.Context, cfg config.Config) (scoring.Strategy, func(), error) {
	noop := func() {}
	switch cfg.Strategy {
	case "", scoring.StrategyKeyword:
		return scoring.KeywordStrategy{}, noop, nil
	case scoring.StrategySimilarity:
		return scoring.NewSimilarityBlendStrategy(), noop, nil
	case scoring.StrategyLLM:
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create LLM client: %w", err)
		}
		analyzer := llm.NewAnalyzer(client)
		analyzer.TextBudget = cfg.TextBudget
		return analyzer, func() { _ = client.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown strategy: %s", cfg.Strategy)
	}
}

// writeReport exports the report as JSON to the given path.
func writeReport(path string, report *types.AnalysisReport) error {
	data, err := json.MarshalIndent(report.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
