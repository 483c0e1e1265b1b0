package progress

import (
	"sync"
	"time"

	"github.com/viant/plg/internal/clock"
)

// Visualizer receives progress notifications.
type Visualizer interface {
	SetIndeterminate(indeterminate bool)
	SetMinimum(minimum int)
	SetMaximum(maximum int)
	Inc()
	SetText(status string)
	Start()
	Finished()
}

// Nop discards every notification.
type Nop struct{}

func (Nop) SetIndeterminate(bool) {}
func (Nop) SetMinimum(int)        {}
func (Nop) SetMaximum(int)        {}
func (Nop) Inc()                  {}
func (Nop) SetText(string)        {}
func (Nop) Start()                {}
func (Nop) Finished()             {}

// State is a snapshot of a Tracker.
type State struct {
	Indeterminate bool
	Minimum       int
	Maximum       int
	Value         int
	Text          string
	Running       bool
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Remaining estimates the time left from the elapsed time and the completed
// fraction. It returns false while the state is indeterminate or no step has
// completed.
func (s State) Remaining() (time.Duration, bool) {
	done := s.Value - s.Minimum
	if s.Indeterminate || !s.Running || done <= 0 || s.Maximum <= s.Minimum {
		return 0, false
	}
	elapsed := clock.Since(s.StartedAt)
	return elapsed * time.Duration(s.Maximum-s.Value) / time.Duration(done), true
}

// Tracker is a Visualizer that records the reported state. It is safe for
// concurrent use. If an onChange callback has been registered it is invoked
// with a snapshot outside the critical section.
type Tracker struct {
	mu       sync.Mutex
	state    State
	onChange func(State)
}

var _ Visualizer = (*Tracker)(nil)

// NewTracker creates a tracker with bounds [0, 100].
func NewTracker(onChange func(State)) *Tracker {
	return &Tracker{state: State{Maximum: 100}, onChange: onChange}
}

func (t *Tracker) update(fn func(s *State)) {
	t.mu.Lock()
	fn(&t.state)
	snapshot := t.state
	cb := t.onChange
	t.mu.Unlock()
	if cb != nil {
		cb(snapshot)
	}
}

// SetIndeterminate toggles the indeterminate mode.
func (t *Tracker) SetIndeterminate(indeterminate bool) {
	t.update(func(s *State) { s.Indeterminate = indeterminate })
}

// SetMinimum sets the lower bound, resets the value to it and leaves the
// indeterminate mode.
func (t *Tracker) SetMinimum(minimum int) {
	t.update(func(s *State) {
		s.Minimum = minimum
		s.Value = minimum
		s.Indeterminate = false
	})
}

func (t *Tracker) SetMaximum(maximum int) {
	t.update(func(s *State) { s.Maximum = maximum })
}

func (t *Tracker) Inc() {
	t.update(func(s *State) { s.Value++ })
}

func (t *Tracker) SetText(status string) {
	t.update(func(s *State) { s.Text = status })
}

func (t *Tracker) Start() {
	t.update(func(s *State) {
		s.Running = true
		s.StartedAt = clock.Now()
		s.FinishedAt = time.Time{}
	})
}

func (t *Tracker) Finished() {
	t.update(func(s *State) {
		s.Running = false
		s.FinishedAt = clock.Now()
	})
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// OnChange registers a callback invoked after every update. Passing nil
// disables it.
func (t *Tracker) OnChange(cb func(State)) {
	t.mu.Lock()
	t.onChange = cb
	t.mu.Unlock()
}
