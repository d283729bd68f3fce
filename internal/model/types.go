// Package model defines shared data structures.
package model

import "time"

// ExtractConfig defines vocabulary extraction settings.
type ExtractConfig struct {
	Limit       int
	MinLen      int
	PhrasesPath string
	FoldAccents bool
}

// RehearseConfig defines rehearsal session settings.
type RehearseConfig struct {
	Duration        time.Duration
	IntervalSeconds int
}

// WordFrequency is one ranked vocabulary entry.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// RehearsalRecord captures a finished rehearsal session.
type RehearsalRecord struct {
	ID              string
	StartedAt       time.Time
	EndedAt         time.Time
	TotalSeconds    int
	IntervalSeconds int
	ElapsedSeconds  int
	WordsShown      int
	Completed       bool
}
