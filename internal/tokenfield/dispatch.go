package tokenfield

import "fmt"

// EventKind tags the low-level events the field reacts to.
type EventKind int

const (
	EventInput   EventKind = iota // buffer text changed (typing or paste)
	EventKeyDown                  // a key was pressed
	EventBlur                     // the input lost focus
)

func (k EventKind) String() string {
	switch k {
	case EventInput:
		return "input"
	case EventKeyDown:
		return "keydown"
	case EventBlur:
		return "blur"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Key identifies the keys that carry meaning for the field.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyBackspace
	KeyDelete
)

// DOM key codes understood by KeyFromCode.
const (
	codeBackspace = 8
	codeEnter     = 13
	codeDelete    = 46
)

// KeyFromCode maps a DOM-style key code to a Key.
func KeyFromCode(code int) Key {
	switch code {
	case codeEnter:
		return KeyEnter
	case codeBackspace:
		return KeyBackspace
	case codeDelete:
		return KeyDelete
	default:
		return KeyOther
	}
}

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	default:
		return "other"
	}
}

// Event is a tagged event variant. Value is the input buffer at the time the
// event fires; Key is only meaningful for EventKeyDown.
type Event struct {
	Kind  EventKind
	Key   Key
	Value string
}

// Input builds an input-change event.
func Input(value string) Event {
	return Event{Kind: EventInput, Value: value}
}

// KeyDown builds a key press event against the current buffer.
func KeyDown(key Key, value string) Event {
	return Event{Kind: EventKeyDown, Key: key, Value: value}
}

// Blur builds a focus-loss event.
func Blur(value string) Event {
	return Event{Kind: EventBlur, Value: value}
}

// ActionKind is what the field should do in response to an event.
type ActionKind int

const (
	ActionNoOp       ActionKind = iota
	ActionBuffer                // keep Value as pending text
	ActionCommit                // turn Batch into tokens and clear the buffer
	ActionRemoveLast            // drop the last token
)

func (k ActionKind) String() string {
	switch k {
	case ActionNoOp:
		return "noop"
	case ActionBuffer:
		return "buffer"
	case ActionCommit:
		return "commit"
	case ActionRemoveLast:
		return "remove-last"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is the outcome of Dispatch.
type Action struct {
	Kind ActionKind
	// Batch holds the raw split of the buffer for ActionCommit, empty
	// parts included.
	Batch []string
	// Value is the pending text for ActionBuffer.
	Value string
}

// Dispatch decides how the field reacts to ev. It is pure: no store or buffer
// is touched.
//
// Input commits only once the buffer holds a separator, so single values can
// be typed incrementally. Enter and blur always commit. Backspace and Delete
// remove the last token only when the buffer is already empty.
func Dispatch(ev Event, sep string) Action {
	switch ev.Kind {
	case EventInput:
		parts := Tokenize(ev.Value, sep)
		if len(parts) > 1 {
			return Action{Kind: ActionCommit, Batch: parts}
		}
		return Action{Kind: ActionBuffer, Value: ev.Value}
	case EventKeyDown:
		switch ev.Key {
		case KeyEnter:
			return Action{Kind: ActionCommit, Batch: Tokenize(ev.Value, sep)}
		case KeyBackspace, KeyDelete:
			if ev.Value == "" {
				return Action{Kind: ActionRemoveLast}
			}
		}
		return Action{Kind: ActionNoOp}
	case EventBlur:
		return Action{Kind: ActionCommit, Batch: Tokenize(ev.Value, sep)}
	default:
		return Action{Kind: ActionNoOp}
	}
}
