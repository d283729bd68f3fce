// Package rehearsal drives timed, shuffled recitation of known words.
package rehearsal

import (
	"fmt"
	"time"

	"github.com/verte-zerg/tuivoc/internal/model"
)

// State is the lifecycle phase of a session.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Session is one rehearsal run. It is a plain value: every transition
// returns a new Session and never edits the receiver's Order in place.
type Session struct {
	ID              string
	StartedAt       time.Time
	TotalSeconds    int
	IntervalSeconds int
	Remaining       int
	Elapsed         int
	Order           []string
	Index           int
	Shown           int
	State           State
	Completed       bool
}

// Current returns the word on display, or "" when idle.
func (s Session) Current() string {
	if s.State == Idle || s.Index < 0 || s.Index >= len(s.Order) {
		return ""
	}
	return s.Order[s.Index]
}

// Active reports whether the session is running or paused.
func (s Session) Active() bool {
	return s.State == Running || s.State == Paused
}

// Clock formats the remaining time as HH:MM:SS.
func (s Session) Clock() string {
	return FormatClock(s.Remaining)
}

// Progress returns remaining time as a fraction of the requested duration.
func (s Session) Progress() float64 {
	if s.TotalSeconds <= 0 {
		return 0
	}
	return float64(s.Remaining) / float64(s.TotalSeconds)
}

// Record converts a finished session into a history row.
func (s Session) Record(endedAt time.Time) model.RehearsalRecord {
	return model.RehearsalRecord{
		ID:              s.ID,
		StartedAt:       s.StartedAt,
		EndedAt:         endedAt,
		TotalSeconds:    s.TotalSeconds,
		IntervalSeconds: s.IntervalSeconds,
		ElapsedSeconds:  s.Elapsed,
		WordsShown:      s.Shown,
		Completed:       s.Completed,
	}
}

// FormatClock renders seconds as HH:MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// Start begins a session over a shuffled copy of words. It refuses a
// non-positive duration or an empty word set.
func Start(durationSeconds, intervalSeconds int, words []string, shuffler *Shuffler) (Session, bool) {
	if durationSeconds <= 0 || len(words) == 0 {
		return Session{}, false
	}
	if intervalSeconds < 1 {
		intervalSeconds = 1
	}
	return Session{
		TotalSeconds:    durationSeconds,
		IntervalSeconds: intervalSeconds,
		Remaining:       durationSeconds,
		Order:           shuffler.Shuffle(words),
		Shown:           1,
		State:           Running,
	}, true
}

// Step applies one tick. words is the current word set, consulted only when
// the shuffled order runs out.
func Step(s Session, words []string, shuffler *Shuffler) Session {
	if s.State != Running {
		return s
	}
	if s.Remaining <= 0 {
		return expire(s)
	}
	s.Remaining--
	s.Elapsed++
	if s.Elapsed%s.IntervalSeconds == 0 {
		s = advance(s, words, shuffler)
	}
	if s.Remaining == 0 {
		return expire(s)
	}
	return s
}

func advance(s Session, words []string, shuffler *Shuffler) Session {
	if s.Index+1 < len(s.Order) {
		s.Index++
		s.Shown++
		return s
	}
	order := shuffler.Shuffle(words)
	if len(order) == 0 {
		return s
	}
	s.Order = order
	s.Index = 0
	s.Shown++
	return s
}

func expire(s Session) Session {
	s = Stop(s)
	s.Remaining = 0
	s.Completed = true
	return s
}

// Pause suspends a running session.
func Pause(s Session) Session {
	if s.State == Running {
		s.State = Paused
	}
	return s
}

// Resume continues a paused session with the same counters and order.
func Resume(s Session) Session {
	if s.State == Paused {
		s.State = Running
	}
	return s
}

// Stop ends a running or paused session and drops its word order.
func Stop(s Session) Session {
	if !s.Active() {
		return s
	}
	s.State = Idle
	s.Order = nil
	s.Index = 0
	return s
}
