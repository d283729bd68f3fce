package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuivoc/internal/model"
	"github.com/verte-zerg/tuivoc/internal/rehearsal"
	"github.com/verte-zerg/tuivoc/internal/tui"
)

func newRehearseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rehearse",
		Short: "Rehearse known words in a timed, shuffled session",
		Args:  cobra.NoArgs,
		RunE:  runRehearseCmd,
	}
	cmd.Flags().DurationVar(&rehearseDuration, "duration", defaultDuration, "session length")
	cmd.Flags().IntVar(&rehearseInterval, "interval", defaultInterval, "seconds each word stays on screen")
	cmd.Flags().BoolVar(&rehearsePlain, "plain", false, "print words to stdout instead of opening the TUI")
	return cmd
}

func runRehearseCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogger(!rehearsePlain)
	if err != nil {
		return err
	}
	defer closeLog()

	applyDurationConfig(cmd, "duration", &rehearseDuration, fileCfg.Rehearse.Duration)
	applyIntConfig(cmd, "interval", &rehearseInterval, fileCfg.Rehearse.Interval)
	cfg := model.RehearseConfig{Duration: rehearseDuration, IntervalSeconds: rehearseInterval}
	if err := validateRehearseConfig(cfg); err != nil {
		return err
	}

	if !rehearsePlain {
		extractCfg, err := resolveExtractConfig(cmd, fileCfg)
		if err != nil {
			return err
		}
		extractor, err := buildExtractor(extractCfg)
		if err != nil {
			return err
		}
		return runTUI(tui.Options{
			Extractor: extractor,
			Limit:     extractCfg.Limit,
			Rehearse:  cfg,
			Tab:       tui.TabRehearse,
		})
	}
	return runPlainRehearsal(cmd, cfg)
}

func validateRehearseConfig(cfg model.RehearseConfig) error {
	if cfg.Duration < time.Second {
		return fmt.Errorf("--duration must be at least 1s")
	}
	if cfg.IntervalSeconds < 1 {
		return fmt.Errorf("--interval must be >= 1")
	}
	return nil
}

// runPlainRehearsal drives a session on a wall-clock ticker and prints each
// word as it is shown. Ctrl-C stops the session and records it.
func runPlainRehearsal(cmd *cobra.Command, cfg model.RehearseConfig) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	set, err := loadKnown(ctx, st)
	if err != nil {
		return err
	}

	scheduler := rehearsal.NewScheduler(set.Words, rehearsal.NewShuffler())
	var last model.RehearsalRecord
	scheduler.OnFinish(func(s rehearsal.Session, endedAt time.Time) {
		last = s.Record(endedAt)
		if err := st.InsertRehearsal(context.WithoutCancel(ctx), last); err != nil {
			logger.Warn("failed to save rehearsal", "id", last.ID, "error", err)
		}
	})
	if _, ok := scheduler.Start(int(cfg.Duration/time.Second), cfg.IntervalSeconds); !ok {
		return fmt.Errorf("nothing to rehearse: the known-word set is empty")
	}
	logger.Info("rehearsal started", "id", scheduler.Session().ID, "words", set.Len())

	out := cmd.OutOrStdout()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	err = rehearsal.Run(ctx, scheduler, ticker.C, func(s rehearsal.Session) {
		if _, werr := fmt.Fprintf(out, "%s  %s\n", s.Clock(), s.Current()); werr != nil {
			logger.Warn("failed to write word", "error", werr)
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	outcome := "stopped"
	if last.Completed {
		outcome = "completed"
	}
	return printf(out, "Session %s after %s, %d words shown\n",
		outcome, rehearsal.FormatClock(last.ElapsedSeconds), last.WordsShown)
}
