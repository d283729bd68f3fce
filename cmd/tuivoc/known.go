package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuivoc/internal/known"
)

func newKnownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "known",
		Short: "Manage the known-word set",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print known words",
		Args:  cobra.NoArgs,
		RunE: withKnownSet(func(cmd *cobra.Command, set *known.Set, _ []string) error {
			for _, word := range set.Words() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add WORD...",
		Short: "Mark words as known",
		Args:  cobra.MinimumNArgs(1),
		RunE: withKnownSet(func(cmd *cobra.Command, set *known.Set, args []string) error {
			added, err := set.Merge(cmd.Context(), args)
			if err != nil {
				return fmt.Errorf("failed to save known words: %w", err)
			}
			return printf(cmd.OutOrStdout(), "Added %d words (%d known)\n", added, set.Len())
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove WORD...",
		Short: "Forget known words",
		Args:  cobra.MinimumNArgs(1),
		RunE: withKnownSet(func(cmd *cobra.Command, set *known.Set, args []string) error {
			removed := 0
			for _, word := range args {
				changed, err := set.Remove(cmd.Context(), word)
				if err != nil {
					return fmt.Errorf("failed to save known words: %w", err)
				}
				if changed {
					removed++
				}
			}
			return printf(cmd.OutOrStdout(), "Removed %d words (%d known)\n", removed, set.Len())
		}),
	})
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget every known word",
		Args:  cobra.NoArgs,
		RunE: withKnownSet(func(cmd *cobra.Command, set *known.Set, _ []string) error {
			if !knownForce {
				return fmt.Errorf("refusing to clear %d known words without --force", set.Len())
			}
			if err := set.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("failed to save known words: %w", err)
			}
			return printf(cmd.OutOrStdout(), "Cleared known words\n")
		}),
	}
	clearCmd.Flags().BoolVar(&knownForce, "force", false, "confirm clearing")
	cmd.AddCommand(clearCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "import FILE",
		Short: "Merge a JSON array of words into the known set",
		Args:  cobra.ExactArgs(1),
		RunE: withKnownSet(func(cmd *cobra.Command, set *known.Set, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			added, err := set.Import(cmd.Context(), data)
			if err != nil {
				logger.Warn("import rejected", "path", args[0], "error", err)
				return fmt.Errorf("import rejected: %w", err)
			}
			return printf(cmd.OutOrStdout(), "Imported %d new words (%d known)\n", added, set.Len())
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the known set as a JSON array (- for stdout)",
		Args:  cobra.MaximumNArgs(1),
		RunE: withKnownSet(func(cmd *cobra.Command, set *known.Set, args []string) error {
			data, err := set.Export()
			if err != nil {
				return err
			}
			path := known.ExportFileName(time.Now())
			if len(args) == 1 {
				path = args[0]
			}
			if path == "-" {
				_, err := cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			return printf(cmd.OutOrStdout(), "Exported %d words to %s\n", set.Len(), path)
		}),
	})
	return cmd
}

type knownAction func(cmd *cobra.Command, set *known.Set, args []string) error

// withKnownSet opens the store and loads the known set around action.
func withKnownSet(action knownAction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if _, err := loadFileConfig(cmd); err != nil {
			return err
		}
		closeLog, err := setupLogger(false)
		if err != nil {
			return err
		}
		defer closeLog()

		st, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore(st)
		set, err := loadKnown(cmd.Context(), st)
		if err != nil {
			return err
		}
		return action(cmd, set, args)
	}
}

func printf(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
