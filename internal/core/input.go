package core

import "strings"

// Action is a semantic intent, abstracted from whatever produced it
// (a keyboard, a bot, a replay).
type Action uint8

const (
	ActionNone     Action = iota
	ActionLeft            // shift the piece one column left
	ActionRight           // shift the piece one column right
	ActionRotate          // turn the piece clockwise
	ActionSoftDrop        // descend faster while held
	ActionHardDrop        // descend until the piece settles
	ActionPause           // toggle pause
	ActionRestart         // start over after game over
	ActionQuit            // end the session
	numActions
)

// Actions lists every action except ActionNone, in declaration order.
func Actions() []Action {
	out := make([]Action, 0, numActions-1)
	for a := ActionLeft; a < numActions; a++ {
		out = append(out, a)
	}
	return out
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns a frame with the given actions set.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= numActions {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.bits&(1<<a) != 0
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// String lists the set actions, e.g. "Left+Rotate".
func (f InputFrame) String() string {
	var names []string
	for _, a := range Actions() {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	if len(names) == 0 {
		return ActionNone.String()
	}
	return strings.Join(names, "+")
}
