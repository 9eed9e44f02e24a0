package formtree

import "fmt"

// Kind discriminates the three node variants.
type Kind int

const (
	KindLeaf Kind = iota + 1
	KindGroup
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindGroup:
		return "group"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// State names a boolean flag carried by every node.
type State string

const (
	StateTouched   State = "touched"
	StateUntouched State = "untouched"
	StateDirty     State = "dirty"
	StatePristine  State = "pristine"
	StatePending   State = "pending"
	StateDisabled  State = "disabled"
	StateEnabled   State = "enabled"
)

// MarkStates lists the states accepted by MarkAll and ExtractByMark.
func MarkStates() []State {
	return []State{StateTouched, StateUntouched, StateDirty, StatePristine, StatePending}
}

// Markable reports whether s can be applied with MarkAs.
func (s State) Markable() bool {
	switch s {
	case StateTouched, StateUntouched, StateDirty, StatePristine, StatePending:
		return true
	}
	return false
}

// ParseState converts a state name into a markable State.
func ParseState(name string) (State, error) {
	s := State(name)
	if !s.Markable() {
		return "", fmt.Errorf("%w: %q (allowed: touched|untouched|dirty|pristine|pending)", ErrInvalidState, name)
	}
	return s, nil
}

func (s *State) UnmarshalText(b []byte) error {
	parsed, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarkOptions is handed unchanged to every MarkAs call made by MarkAll.
// The traversal never interprets it.
type MarkOptions struct {
	// OnlySelf mirrors the host framework flag that stops upward propagation.
	OnlySelf bool
	// Silent suppresses change notifications.
	Silent bool
}
