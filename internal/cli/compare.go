package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ishantsinghrawat/reviews-stg/internal/config"
	"github.com/ishantsinghrawat/reviews-stg/internal/output"
	"github.com/ishantsinghrawat/reviews-stg/internal/review"
	"github.com/ishantsinghrawat/reviews-stg/internal/snapshot"
)

var (
	flagAbsThreshold   int
	flagRelThreshold   float64
	flagMode           string
	flagFormat         string
	flagMaxRows        int
	flagUpdateBaseline bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <baseline> <new> <report>",
	Short: "Compare two review snapshots and write a delta report",
	Long: "Compare loads the baseline snapshot (missing file = empty baseline) and the new\n" +
		"snapshot, computes which records are new, aggregates negative counts per slice,\n" +
		"applies the alerting mode, and writes the report atomically. The updated and alert\n" +
		"signals are printed to stdout as key=value lines and appended to $GITHUB_OUTPUT\n" +
		"when that variable is set.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides(cmd))
		if err != nil {
			return err
		}
		runCompare(args[0], args[1], args[2], cfg)
		return nil
	},
}

// buildOverrides maps changed flags onto config keys. Only flags the user
// actually set are included, so an explicit zero threshold wins over the
// config file while an untouched flag does not.
func buildOverrides(cmd *cobra.Command) map[string]string {
	m := make(map[string]string)
	if cmd.Flags().Changed("abs-threshold") {
		m["absThreshold"] = fmt.Sprintf("%d", flagAbsThreshold)
	}
	if cmd.Flags().Changed("rel-threshold") {
		m["relThreshold"] = fmt.Sprintf("%g", flagRelThreshold)
	}
	if cmd.Flags().Changed("mode") {
		m["mode"] = flagMode
	}
	if cmd.Flags().Changed("format") {
		m["format"] = flagFormat
	}
	if cmd.Flags().Changed("max-rows") {
		m["maxRows"] = fmt.Sprintf("%d", flagMaxRows)
	}
	return m
}

func runCompare(baselinePath, newPath, reportPath string, cfg config.Config) {
	mode, err := review.ParseMode(cfg.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return
	}

	norm := review.NewNormalizer(labelTable(cfg))

	current, err := snapshot.Load(newPath, norm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	baseline, err := snapshot.LoadBaseline(baselinePath, norm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	report := review.Evaluate(baseline, current, review.EngineConfig{
		Mode: mode,
		Thresholds: review.Thresholds{
			Abs: cfg.AbsThreshold,
			Rel: cfg.RelThreshold,
		},
	})

	log.Info().
		Str("run_id", report.RunID).
		Str("mode", string(mode)).
		Int("total", report.TotalReviews).
		Int("negative", report.NegativeTotal).
		Int("new", len(report.NewOnly)).
		Int("exceeding", len(report.Exceeding)).
		Bool("updated", report.Updated).
		Bool("alert", report.Alert).
		Msg("comparison complete")

	if err := output.WriteReportFile(report, cfg.Format, reportPath, output.Options{MaxRows: cfg.MaxRows}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if err := output.WriteSignals(os.Stdout, report.Updated, report.Alert); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing signals: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	if path := os.Getenv("GITHUB_OUTPUT"); path != "" {
		if err := output.AppendSignalsFile(path, report.Updated, report.Alert); err != nil {
			// The report is already on disk; a broken orchestration file
			// should not fail the run.
			log.Warn().Err(err).Str("path", path).Msg("could not append signals file")
		}
	}

	if flagUpdateBaseline {
		if err := snapshot.Save(baselinePath, current); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating baseline: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
		log.Info().Str("path", baselinePath).Msg("baseline updated")
	}
}

// labelTable converts the config label override into the normalizer's table.
func labelTable(cfg config.Config) map[string]review.Sentiment {
	if len(cfg.SentimentLabels) == 0 {
		return nil
	}
	table := make(map[string]review.Sentiment, len(cfg.SentimentLabels))
	for k, v := range cfg.SentimentLabels {
		table[k] = review.Sentiment(v)
	}
	return table
}

func init() {
	compareCmd.Flags().IntVar(&flagAbsThreshold, "abs-threshold", 3, "Absolute negative-count delta threshold")
	compareCmd.Flags().Float64Var(&flagRelThreshold, "rel-threshold", 0.2, "Relative negative-count increase threshold")
	compareCmd.Flags().StringVar(&flagMode, "mode", "", "Alerting mode (threshold, any-new-negative)")
	compareCmd.Flags().StringVar(&flagFormat, "format", "", "Report format (markdown, json)")
	compareCmd.Flags().IntVar(&flagMaxRows, "max-rows", 0, "Maximum detail rows in the report")
	compareCmd.Flags().BoolVar(&flagUpdateBaseline, "update-baseline", false, "Overwrite the baseline with the new snapshot on success")
}
