package main

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuivoc/internal/config"
	"github.com/verte-zerg/tuivoc/internal/model"
)

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	commented := regexp.MustCompile(`(?m)^# ([a-z-]+ = )`)
	body := commented.ReplaceAllString(defaultConfigTemplate(), "$1")
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template does not decode: %v\n%s", err, body)
	}
	if cfg.Extract.MinLen == nil || *cfg.Extract.MinLen != 2 {
		t.Fatalf("unexpected min-len %v", cfg.Extract.MinLen)
	}
	if cfg.Rehearse.Duration == nil || cfg.Rehearse.Duration.Duration != defaultDuration {
		t.Fatalf("unexpected duration %v", cfg.Rehearse.Duration)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != defaultLogLevel {
		t.Fatalf("unexpected log level %v", cfg.Log.Level)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	var limit, minLen int
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(&limit, "limit", 0, "")
	cmd.Flags().IntVar(&minLen, "min-len", 2, "")
	if err := cmd.Flags().Set("limit", "7"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	fromFile := 40
	fileMinLen := 3
	applyIntConfig(cmd, "limit", &limit, &fromFile)
	applyIntConfig(cmd, "min-len", &minLen, &fileMinLen)
	if limit != 7 {
		t.Fatalf("expected flag value to win, got %d", limit)
	}
	if minLen != 3 {
		t.Fatalf("expected config value for unchanged flag, got %d", minLen)
	}

	var d time.Duration
	cmd.Flags().DurationVar(&d, "duration", time.Minute, "")
	applyDurationConfig(cmd, "duration", &d, &config.Duration{Duration: 90 * time.Second})
	if d != 90*time.Second {
		t.Fatalf("expected config duration, got %v", d)
	}
}

func TestValidateConfigs(t *testing.T) {
	if err := validateExtractConfig(model.ExtractConfig{MinLen: 1}); err == nil {
		t.Fatalf("expected min-len error")
	}
	if err := validateExtractConfig(model.ExtractConfig{MinLen: 2, Limit: -1}); err == nil {
		t.Fatalf("expected limit error")
	}
	if err := validateExtractConfig(model.ExtractConfig{MinLen: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateRehearseConfig(model.RehearseConfig{Duration: 0, IntervalSeconds: 1}); err == nil {
		t.Fatalf("expected duration error")
	}
	if err := validateRehearseConfig(model.RehearseConfig{Duration: time.Minute, IntervalSeconds: 0}); err == nil {
		t.Fatalf("expected interval error")
	}
}

func TestBuildExtractorWithCustomPhrases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.txt")
	if err := os.WriteFile(path, []byte("take off\nsingle\nput-up\n"), 0o644); err != nil {
		t.Fatalf("write phrases: %v", err)
	}
	extractor, err := buildExtractor(model.ExtractConfig{MinLen: 2, PhrasesPath: path})
	if err != nil {
		t.Fatalf("build extractor: %v", err)
	}
	if got := extractor.Phrases.Phrases(); len(got) != 1 || got[0] != "TAKE OFF" {
		t.Fatalf("unexpected phrases %v", got)
	}
}
