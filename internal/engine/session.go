package engine

import "fmt"

// State is a step in the lifecycle of one advisory session.
type State int

// Session states.
const (
	StateCollectingInputs State = iota
	StateClassified
	StateRejected
	StateEligible
	StateTermsSelected
	StateReported
)

func (s State) String() string {
	switch s {
	case StateCollectingInputs:
		return "collecting_inputs"
	case StateClassified:
		return "classified"
	case StateRejected:
		return "rejected"
	case StateEligible:
		return "eligible"
	case StateTermsSelected:
		return "terms_selected"
	case StateReported:
		return "reported"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var transitions = map[State][]State{
	StateCollectingInputs: {StateClassified},
	StateClassified:       {StateRejected, StateEligible},
	StateEligible:         {StateTermsSelected},
	StateTermsSelected:    {StateReported},
}

// Session tracks the progress of one assessment. It only moves forward.
type Session struct {
	history []State
	state   State
}

// NewSession starts a session in the collecting-inputs state.
func NewSession() *Session {
	return &Session{
		state:   StateCollectingInputs,
		history: []State{StateCollectingInputs},
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// History returns every state visited, oldest first.
func (s *Session) History() []State {
	out := make([]State, len(s.history))
	copy(out, s.history)
	return out
}

// Terminal reports whether the session has finished.
func (s *Session) Terminal() bool {
	return s.state == StateRejected || s.state == StateReported
}

// Transition moves the session to the next state.
func (s *Session) Transition(to State) error {
	for _, allowed := range transitions[s.state] {
		if allowed == to {
			s.state = to
			s.history = append(s.history, to)
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
}
