package cocktail

import (
	"sync"

	"github.com/google/uuid"
)

// LifecycleState is the single source of truth for what the client should
// render. Exactly one state is active at a time.
type LifecycleState string

const (
	StateIdle    LifecycleState = "idle"
	StateLoading LifecycleState = "loading"
	StateSuccess LifecycleState = "success"
	StateFailed  LifecycleState = "failed"
)

// Phase names the loading sub-step while state is StateLoading.
type Phase string

const (
	PhaseRecipes Phase = "generating-recipes"
	PhaseImages  Phase = "generating-images"
)

// View is an immutable snapshot of the session, shaped for JSON responses.
type View struct {
	State        LifecycleState `json:"state"`
	Phase        Phase          `json:"phase,omitempty"`
	Message      string         `json:"message,omitempty"`
	Recipes      []Recipe       `json:"recipes,omitempty"`
	CurrentIndex int            `json:"current_index"`
	Theme        Theme          `json:"theme"`
}

// Session holds the lifecycle state machine, the carousel position and the
// theme for the single active user. Every submission mints a generation
// token; phase updates and final publication are compare-and-set against the
// current token, so a stale in-flight pipeline can never overwrite state
// owned by a newer submission.
type Session struct {
	mu         sync.Mutex
	state      LifecycleState
	phase      Phase
	message    string
	batch      []Recipe
	index      int
	theme      Theme
	token      uuid.UUID
	applyTheme func(Theme)
}

// NewSession returns an idle session. applyTheme is invoked once per theme
// change and may be nil.
func NewSession(applyTheme func(Theme)) *Session {
	return &Session{state: StateIdle, theme: ThemeLight, applyTheme: applyTheme}
}

// Begin discards any previous batch or error and moves to
// Loading("generating-recipes"). The returned token identifies this
// generation for later CAS updates.
func (s *Session) Begin() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = uuid.New()
	s.state = StateLoading
	s.phase = PhaseRecipes
	s.message = ""
	s.batch = nil
	s.index = 0
	return s.token
}

// Reject records a submission that never reached the provider (validation or
// configuration failure). It also rotates the token so any older in-flight
// pipeline loses ownership of the session.
func (s *Session) Reject(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = uuid.New()
	s.state = StateFailed
	s.phase = ""
	s.message = message
	s.batch = nil
	s.index = 0
}

// AdvanceToImages moves Loading into the image phase. Returns false if the
// token no longer owns the session.
func (s *Session) AdvanceToImages(token uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token || s.state != StateLoading {
		return false
	}
	s.phase = PhaseImages
	return true
}

// Publish installs the finished batch and moves to Success. The batch is
// accepted whatever its length. Returns false for a stale token, in which
// case nothing changes.
func (s *Session) Publish(token uuid.UUID, batch []Recipe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		return false
	}
	s.state = StateSuccess
	s.phase = ""
	s.message = ""
	s.batch = batch
	s.index = 0
	return true
}

// Fail moves to Failed with a user-facing message. Returns false for a stale
// token.
func (s *Session) Fail(token uuid.UUID, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		return false
	}
	s.state = StateFailed
	s.phase = ""
	s.message = message
	s.batch = nil
	s.index = 0
	return true
}

// Snapshot returns the current view. The recipe slice is copied so callers
// can't mutate session state through it.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	var recipes []Recipe
	if s.batch != nil {
		recipes = make([]Recipe, len(s.batch))
		copy(recipes, s.batch)
	}
	return View{
		State:        s.state,
		Phase:        s.phase,
		Message:      s.message,
		Recipes:      recipes,
		CurrentIndex: s.index,
		Theme:        s.theme,
	}
}

// Next advances the carousel, wrapping past the end.
func (s *Session) Next() (View, error) {
	return s.move(1)
}

// Previous steps the carousel back, wrapping before the start.
func (s *Session) Previous() (View, error) {
	return s.move(-1)
}

func (s *Session) move(delta int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSuccess || len(s.batch) == 0 {
		return s.viewLocked(), ErrNoBatch
	}
	n := len(s.batch)
	s.index = ((s.index+delta)%n + n) % n
	return s.viewLocked(), nil
}

// GoTo jumps to an explicit recipe index.
func (s *Session) GoTo(index int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSuccess || len(s.batch) == 0 {
		return s.viewLocked(), ErrNoBatch
	}
	if index < 0 || index >= len(s.batch) {
		return s.viewLocked(), ErrIndexOutOfRange
	}
	s.index = index
	return s.viewLocked(), nil
}

// ToggleTheme flips the theme and fires the apply hook. Always available,
// whatever the lifecycle state.
func (s *Session) ToggleTheme() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = s.theme.Toggle()
	if s.applyTheme != nil {
		s.applyTheme(s.theme)
	}
	return s.viewLocked()
}
