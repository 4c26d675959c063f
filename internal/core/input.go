package core

// Action represents a semantic key action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A - nudge the paddle left
	ActionRight        // Right arrow, D - nudge the paddle right
	ActionTap          // Space, Enter - tap the arena
	ActionBack         // B, Escape - back to menu
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionTap:
		return "Tap"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind is the phase of a pointer (mouse or touch) event.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerDrag
	PointerRelease
)

// Pointer is a pointer event in screen cell coordinates.
type Pointer struct {
	Kind PointerKind
	X, Y int
}

// InputFrame holds everything the player did during one simulation tick:
// discrete key actions and the ordered pointer events.
type InputFrame struct {
	Actions  map[Action]bool
	Pointers []Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddPointer appends a pointer event, keeping arrival order.
func (f *InputFrame) AddPointer(p Pointer) {
	f.Pointers = append(f.Pointers, p)
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointers = f.Pointers[:0]
}
