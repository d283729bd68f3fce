package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuivoc/internal/stats"
	"github.com/verte-zerg/tuivoc/internal/vocab"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract FILE|GLOB...",
		Short: "Print ranked unknown vocabulary from documents",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExtractCmd,
	}
	addExtractFlags(cmd)
	cmd.Flags().BoolVar(&extractJSON, "json", false, "print a JSON array instead of columns")
	return cmd
}

func runExtractCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := resolveExtractConfig(cmd, fileCfg)
	if err != nil {
		return err
	}
	extractor, err := buildExtractor(cfg)
	if err != nil {
		return err
	}
	freqs, files, err := extractor.ExtractDocuments(args)
	if err != nil {
		return err
	}
	logger.Info("documents extracted", "documents", len(files), "tokens", freqs.Total(), "distinct", freqs.Len())

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	set, err := loadKnown(cmd.Context(), st)
	if err != nil {
		return err
	}

	entries := vocab.Rank(freqs, set, cfg.Limit)
	out := cmd.OutOrStdout()
	if extractJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode words: %w", err)
		}
		if _, err := fmt.Fprintln(out, string(data)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	return stats.RenderVocabulary(out, entries, stats.TerminalWidth())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show rehearsal history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	closeLog, err := setupLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	report, err := stats.BuildReport(cmd.Context(), st, statsLast)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	return stats.RenderReport(cmd.OutOrStdout(), report)
}
