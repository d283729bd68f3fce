// Package main provides the CLI entrypoint for tuivoc.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuivoc/internal/config"
	"github.com/verte-zerg/tuivoc/internal/known"
	"github.com/verte-zerg/tuivoc/internal/model"
	"github.com/verte-zerg/tuivoc/internal/store"
	"github.com/verte-zerg/tuivoc/internal/tui"
	"github.com/verte-zerg/tuivoc/internal/vocab"
	"github.com/verte-zerg/tuivoc/internal/wordlist"
)

const (
	defaultLimit    = 0
	defaultDuration = time.Minute
	defaultInterval = 5
	defaultLogLevel = "info"
)

var (
	extractLimit       int
	extractMinLen      int
	extractPhrases     string
	extractFoldAccents bool
	extractJSON        bool
	watchDocuments     bool

	rehearseDuration time.Duration
	rehearseInterval int
	rehearsePlain    bool

	statsLast int

	knownForce bool

	logLevel string
	logger   = slog.Default()
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuivoc [FILE|GLOB...]",
		Short:         "TUI vocabulary extractor and rehearsal trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	addExtractFlags(rootCmd)
	rootCmd.Flags().BoolVar(&watchDocuments, "watch", true, "re-extract documents when they change on disk")

	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newKnownCmd())
	rootCmd.AddCommand(newRehearseCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addExtractFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&extractLimit, "limit", defaultLimit, "show at most N words (0 = all)")
	cmd.Flags().IntVar(&extractMinLen, "min-len", vocab.DefaultMinLen, "minimum token length")
	cmd.Flags().StringVar(&extractPhrases, "phrases", "", "phrase file replacing the bundled phrasal verbs")
	cmd.Flags().BoolVar(&extractFoldAccents, "fold-accents", false, "strip accents before normalizing")
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	extractCfg, err := resolveExtractConfig(cmd, fileCfg)
	if err != nil {
		return err
	}
	extractor, err := buildExtractor(extractCfg)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if _, err := vocab.ExpandPaths(args); err != nil {
			return err
		}
	}
	rehearseCfg := resolveRehearseDefaults(fileCfg)
	return runTUI(tui.Options{
		Extractor: extractor,
		Documents: args,
		Limit:     extractCfg.Limit,
		Rehearse:  rehearseCfg,
		Watch:     watchDocuments,
		Tab:       tui.TabVocabulary,
	})
}

// runTUI opens the store and known set and runs the application until quit.
func runTUI(opts tui.Options) error {
	ctx := context.Background()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	set, err := loadKnown(ctx, st)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	opts.Known = set
	opts.History = st
	opts.ExportDir = cwd
	opts.Logger = logger

	m := tui.NewModel(opts)
	defer m.Close()
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	return fileCfg, nil
}

func resolveExtractConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.ExtractConfig, error) {
	applyIntConfig(cmd, "limit", &extractLimit, fileCfg.Extract.Limit)
	applyIntConfig(cmd, "min-len", &extractMinLen, fileCfg.Extract.MinLen)
	applyStringConfig(cmd, "phrases", &extractPhrases, fileCfg.Extract.Phrases)
	applyBoolConfig(cmd, "fold-accents", &extractFoldAccents, fileCfg.Extract.FoldAccents)

	cfg := model.ExtractConfig{
		Limit:       extractLimit,
		MinLen:      extractMinLen,
		PhrasesPath: extractPhrases,
		FoldAccents: extractFoldAccents,
	}
	if err := validateExtractConfig(cfg); err != nil {
		return model.ExtractConfig{}, err
	}
	return cfg, nil
}

// resolveRehearseDefaults reads rehearsal settings for commands that do not
// expose rehearsal flags.
func resolveRehearseDefaults(fileCfg config.FileConfig) model.RehearseConfig {
	cfg := model.RehearseConfig{Duration: defaultDuration, IntervalSeconds: defaultInterval}
	if fileCfg.Rehearse.Duration != nil {
		cfg.Duration = fileCfg.Rehearse.Duration.Duration
	}
	if fileCfg.Rehearse.Interval != nil {
		cfg.IntervalSeconds = *fileCfg.Rehearse.Interval
	}
	return cfg
}

func validateExtractConfig(cfg model.ExtractConfig) error {
	if cfg.Limit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	if cfg.MinLen < vocab.DefaultMinLen {
		return fmt.Errorf("--min-len must be >= %d", vocab.DefaultMinLen)
	}
	return nil
}

func buildExtractor(cfg model.ExtractConfig) (vocab.Extractor, error) {
	phrases := wordlist.PhrasalVerbs()
	if cfg.PhrasesPath != "" {
		lines, err := wordlist.LoadWords(cfg.PhrasesPath)
		if err != nil {
			return vocab.Extractor{}, fmt.Errorf("failed to load phrases: %w", err)
		}
		valid, rejected := wordlist.SplitPhrases(lines)
		for _, line := range rejected {
			logger.Warn("ignoring phrase that can never match", "path", cfg.PhrasesPath, "phrase", line)
		}
		phrases = valid
	}
	dict := vocab.NewPhraseDictionary(phrases)
	logger.Debug("phrase dictionary ready", "phrases", dict.Len())
	return vocab.Extractor{
		Phrases:     dict,
		MinLen:      cfg.MinLen,
		FoldAccents: cfg.FoldAccents,
	}, nil
}

func openStore() (*store.Store, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		logger.Warn("failed to close db", "error", err)
	}
}

func loadKnown(ctx context.Context, st *store.Store) (*known.Set, error) {
	return known.Load(ctx, st, wordlist.DefaultKnownWords(), logger)
}

// setupLogger installs the process logger. While a TUI owns the terminal
// records go to the state log file, otherwise to stderr.
func setupLogger(toFile bool) (func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", logLevel)
	}
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		path := config.DefaultLogPath()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() {
			if cerr := f.Close(); cerr != nil {
				// Best-effort close of the log file.
				_ = cerr
			}
		}
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return closeFn, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *config.Duration) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = value.Duration
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuivoc configuration
# Uncomment a value to enable it. CLI flags override config values.

[extract]
# limit = %d              # Show at most N words (0 = all)
# min-len = %d            # Minimum token length
# phrases = ""           # Phrase file replacing the bundled phrasal verbs
# fold-accents = false   # Strip accents before normalizing

[rehearse]
# duration = %q        # Session length (Go duration)
# interval = %d           # Seconds each word stays on screen

[log]
# level = %q          # debug, info, warn or error
`,
		defaultLimit,
		vocab.DefaultMinLen,
		defaultDuration.String(),
		defaultInterval,
		defaultLogLevel,
	)
}
