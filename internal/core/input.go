package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, W - move up
	ActionDown              // Down arrow, S - move down
	ActionLeft              // Left arrow, A - move left
	ActionRight             // Right arrow, D - move right
	ActionFire              // Space - single shot
	ActionDoubleFire        // X - double shot
	ActionSuperFire         // Z - super shot (rapid fire toggle while paused)
	ActionNuke              // N - nuke
	ActionShield            // Tab - shield (cheat energy toggle while paused)
	ActionMusic             // M - toggle background music
	ActionConfirm           // Enter - confirm selection, restart after game over
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionDoubleFire:
		return "DoubleFire"
	case ActionSuperFire:
		return "SuperFire"
	case ActionNuke:
		return "Nuke"
	case ActionShield:
		return "Shield"
	case ActionMusic:
		return "Music"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
//
// Pressed and Released are edge-triggered: they hold actions whose key went
// down or up since the previous tick. Held is level-triggered and holds every
// action whose key is currently down.
type InputFrame struct {
	Actions  map[Action]bool // pressed this frame
	Released map[Action]bool
	Held     map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Released: make(map[Action]bool),
		Held:     make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Release marks an action as released for this frame.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// WasReleased returns true if the given action was released this frame.
func (f InputFrame) WasReleased(a Action) bool {
	return f.Released[a]
}

// Hold marks an action as currently held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the given action is held down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Pressed returns the actions pressed this frame in declaration order,
// so that dispatch is deterministic.
func (f InputFrame) Pressed() []Action {
	return orderedActions(f.Actions)
}

// ReleasedActions returns the actions released this frame in declaration order.
func (f InputFrame) ReleasedActions() []Action {
	return orderedActions(f.Released)
}

func orderedActions(set map[Action]bool) []Action {
	if len(set) == 0 {
		return nil
	}
	out := make([]Action, 0, len(set))
	for a := ActionNone + 1; a <= ActionPause; a++ {
		if set[a] {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Released)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Released {
		clone.Released[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
