package tui

import "github.com/masonhale/Starfighter-Gosu-Tutorial/internal/core"

// Terminals report key presses and auto-repeats but never key releases.
// HoldTracker turns that stream into press/hold/release edges: a holdable
// action stays held while repeats keep arriving and is released once they
// stop for long enough.
type HoldTracker struct {
	tick     int
	initial  int // ticks a fresh press stays latched, covering the repeat delay
	repeat   int // ticks each auto-repeat extends the latch
	holdable map[core.Action]bool
	held     map[core.Action]int // action -> expiry tick
	pressed  map[core.Action]bool
}

// holdableActions are level-triggered: movement and the shield.
var holdableActions = []core.Action{
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
	core.ActionShield,
}

// NewHoldTracker creates a tracker for the given tick rate.
func NewHoldTracker(tickRate int) *HoldTracker {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	h := &HoldTracker{
		initial:  max(tickRate/2, 1),
		repeat:   max(tickRate/8, 1),
		holdable: make(map[core.Action]bool, len(holdableActions)),
		held:     make(map[core.Action]int),
		pressed:  make(map[core.Action]bool),
	}
	for _, a := range holdableActions {
		h.holdable[a] = true
	}
	return h
}

// Press records a key event for the action. Repeats of an already held
// action only extend the latch; other actions are pressed every time.
func (h *HoldTracker) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !h.holdable[a] {
		h.pressed[a] = true
		return
	}
	if _, ok := h.held[a]; ok {
		h.held[a] = h.tick + h.repeat
		return
	}
	h.held[a] = h.tick + h.initial
	h.pressed[a] = true
}

// Frame advances one tick and returns the input for it.
func (h *HoldTracker) Frame() core.InputFrame {
	h.tick++
	f := core.NewInputFrame()
	for a := range h.pressed {
		f.Set(a)
	}
	clear(h.pressed)

	for a, expiry := range h.held {
		if h.tick > expiry {
			delete(h.held, a)
			f.Release(a)
			continue
		}
		f.Hold(a)
	}
	return f
}

// Reset releases everything without emitting release edges.
func (h *HoldTracker) Reset() {
	clear(h.pressed)
	clear(h.held)
}
