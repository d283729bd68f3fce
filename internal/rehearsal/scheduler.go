package rehearsal

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WordSource returns the current word set. It is read at start and on
// every reshuffle.
type WordSource func() []string

// Scheduler owns at most one session. Each start or resume opens a new
// generation; ticks from an older generation are ignored, which is how a
// pause or stop cancels a tick that is already scheduled.
type Scheduler struct {
	session    Session
	generation uint64
	words      WordSource
	shuffler   *Shuffler
	now        func() time.Time
	onFinish   func(Session, time.Time)
}

// NewScheduler builds an idle scheduler.
func NewScheduler(words WordSource, shuffler *Shuffler) *Scheduler {
	if shuffler == nil {
		shuffler = NewShuffler()
	}
	return &Scheduler{words: words, shuffler: shuffler, now: time.Now}
}

// OnFinish registers a hook that receives every session that ends, by
// expiry or by Stop, together with the end time.
func (s *Scheduler) OnFinish(fn func(Session, time.Time)) {
	s.onFinish = fn
}

// Session returns the current session value.
func (s *Scheduler) Session() Session {
	return s.session
}

// Generation returns the generation that live ticks must carry.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// Start stops any active session and begins a new one. It returns the
// generation for the first tick and false when the configuration was
// refused.
func (s *Scheduler) Start(durationSeconds, intervalSeconds int) (uint64, bool) {
	s.Stop()
	session, ok := Start(durationSeconds, intervalSeconds, s.currentWords(), s.shuffler)
	if !ok {
		return s.generation, false
	}
	session.ID = uuid.NewString()
	session.StartedAt = s.now()
	s.session = session
	s.generation++
	return s.generation, true
}

// Tick advances the session when gen is current. It reports whether
// another tick should be scheduled.
func (s *Scheduler) Tick(gen uint64) bool {
	if gen != s.generation || s.session.State != Running {
		return false
	}
	s.session = Step(s.session, s.currentWords(), s.shuffler)
	if s.session.State == Idle {
		s.generation++
		s.finish(s.session)
		return false
	}
	return true
}

// Pause suspends a running session and invalidates its pending tick.
func (s *Scheduler) Pause() bool {
	if s.session.State != Running {
		return false
	}
	s.session = Pause(s.session)
	s.generation++
	return true
}

// Resume continues a paused session and returns the new tick generation.
func (s *Scheduler) Resume() (uint64, bool) {
	if s.session.State != Paused {
		return s.generation, false
	}
	s.session = Resume(s.session)
	s.generation++
	return s.generation, true
}

// Stop ends the active session. It is safe to call when idle.
func (s *Scheduler) Stop() bool {
	if !s.session.Active() {
		return false
	}
	ended := s.session
	s.session = Stop(s.session)
	s.generation++
	s.finish(ended)
	return true
}

func (s *Scheduler) finish(ended Session) {
	if s.onFinish != nil {
		s.onFinish(ended, s.now())
	}
}

func (s *Scheduler) currentWords() []string {
	if s.words == nil {
		return nil
	}
	return s.words()
}

// Run drives an already started session from ticks until it ends or ctx is
// cancelled, calling onWord whenever a new word is shown.
func Run(ctx context.Context, s *Scheduler, ticks <-chan time.Time, onWord func(Session)) error {
	gen := s.Generation()
	if onWord != nil && s.Session().State == Running {
		onWord(s.Session())
	}
	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		case <-ticks:
			shown := s.Session().Shown
			more := s.Tick(gen)
			if !more {
				return nil
			}
			if onWord != nil && s.Session().Shown != shown {
				onWord(s.Session())
			}
		}
	}
}
