package tokenfield

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoContainer is returned by New when no host container is given.
var ErrNoContainer = errors.New("tokenfield: container is required")

// Field is a token input bound to one container. It owns the token store,
// the pending input buffer and the callbacks; nothing else mutates them.
//
// A Field is not safe for concurrent use. Every method is expected to run on
// the goroutine that owns the host's event loop.
type Field struct {
	container Container
	store     *Store
	buffer    string
	focused   bool

	separator string
	validator Validator
	onChange  ChangeFunc
	sizer     Sizer
	width     InputWidth
	newID     func() string
	logger    *zap.Logger
}

// Option configures a Field at construction.
type Option func(*Field)

// WithSeparator sets the separator. Empty keeps DefaultSeparator.
func WithSeparator(sep string) Option {
	return func(f *Field) {
		if sep != "" {
			f.separator = sep
		}
	}
}

// WithValidator sets the initial validator.
func WithValidator(v Validator) Option {
	return func(f *Field) { f.validator = v }
}

// WithOnChange sets the initial change callback.
func WithOnChange(fn ChangeFunc) Option {
	return func(f *Field) { f.onChange = fn }
}

// WithSizer replaces the default layout policy.
func WithSizer(s Sizer) Option {
	return func(f *Field) { f.sizer = s }
}

// WithLogger attaches a logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithIDGenerator overrides how token ids are generated.
func WithIDGenerator(gen func() string) Option {
	return func(f *Field) {
		if gen != nil {
			f.newID = gen
		}
	}
}

// New creates an empty field inside container. Only an untyped nil container
// is rejected; a nil pointer wrapped in the interface is the caller's bug and
// fails on the first layout pass.
func New(container Container, opts ...Option) (*Field, error) {
	if container == nil {
		return nil, ErrNoContainer
	}
	f := &Field{
		container: container,
		store:     NewStore(),
		separator: DefaultSeparator,
		sizer:     DefaultSizer(),
		width:     FullWidth,
		newID:     uuid.NewString,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// OnChange registers the change callback, replacing any previous one.
func (f *Field) OnChange(fn ChangeFunc) {
	f.onChange = fn
}

// SetValidator replaces the validator. Existing tokens keep their flags.
func (f *Field) SetValidator(v Validator) {
	f.validator = v
}

// SetSizer replaces the layout policy and recomputes the input width.
func (f *Field) SetSizer(s Sizer) InputWidth {
	f.sizer = s
	return f.Relayout()
}

// Separator returns the active separator.
func (f *Field) Separator() string {
	return f.separator
}

// Handle dispatches ev and applies the resulting action.
func (f *Field) Handle(ev Event) Action {
	action := Dispatch(ev, f.separator)
	f.logger.Debug("dispatch",
		zap.Stringer("event", ev.Kind),
		zap.Stringer("key", ev.Key),
		zap.Stringer("action", action.Kind),
	)

	switch action.Kind {
	case ActionBuffer:
		f.buffer = action.Value
	case ActionCommit:
		f.buffer = ""
		f.commit(action.Batch)
	case ActionRemoveLast:
		if last, ok := f.store.Last(); ok {
			f.remove(last.ID)
		}
	}
	return action
}

// Input reports a new buffer value from typing or pasting.
func (f *Field) Input(value string) Action {
	return f.Handle(Input(value))
}

// KeyDown reports a key press against the current buffer.
func (f *Field) KeyDown(key Key) Action {
	return f.Handle(KeyDown(key, f.buffer))
}

// Blur reports focus loss. The buffer is committed.
func (f *Field) Blur() Action {
	f.focused = false
	return f.Handle(Blur(f.buffer))
}

// Click reports a click anywhere in the container; it focuses the input.
func (f *Field) Click() {
	f.Focus()
}

// Focus marks the input as focused.
func (f *Field) Focus() {
	f.focused = true
}

// Focused reports whether the input has focus.
func (f *Field) Focused() bool {
	return f.focused
}

// Close removes the token with id through its close affordance. Unknown or
// already removed ids are ignored.
func (f *Field) Close(id string) bool {
	return f.remove(id)
}

// Relayout recomputes the input width without mutating the store, e.g. after
// the container was resized.
func (f *Field) Relayout() InputWidth {
	last, ok := f.store.Last()
	f.width = f.sizer.Size(f.container, last, ok)
	return f.width
}

// Content returns all token texts in display order.
func (f *Field) Content() []string {
	return f.store.Content()
}

// ValidContent returns the texts of tokens that passed validation.
func (f *Field) ValidContent() []string {
	return f.store.ValidContent()
}

// InvalidContent returns the texts of tokens that failed validation.
func (f *Field) InvalidContent() []string {
	return f.store.InvalidContent()
}

// Tokens returns a copy of the tokens in display order.
func (f *Field) Tokens() []Token {
	return f.store.Tokens()
}

// Len returns the number of tokens.
func (f *Field) Len() int {
	return f.store.Len()
}

// Buffer returns the pending, uncommitted text.
func (f *Field) Buffer() string {
	return f.buffer
}

// InputWidth returns the width computed by the last layout pass.
func (f *Field) InputWidth() InputWidth {
	return f.width
}

func (f *Field) commit(batch []string) {
	created := 0
	for _, text := range Candidates(batch) {
		tok := NewToken(f.newID(), text, f.validator.check(text))
		f.store.Append(tok)
		f.width = f.sizer.Size(f.container, tok, true)
		created++
	}
	if created == 0 {
		return
	}
	f.logger.Debug("committed tokens",
		zap.Int("created", created),
		zap.Int("total", f.store.Len()),
	)
	f.notify()
}

func (f *Field) remove(id string) bool {
	tok, ok := f.store.Remove(id)
	if !ok {
		return false
	}
	f.Relayout()
	f.logger.Debug("removed token",
		zap.String("id", tok.ID),
		zap.Int("total", f.store.Len()),
	)
	f.notify()
	return true
}

func (f *Field) notify() {
	if f.onChange != nil {
		f.onChange(f.store.Content())
	}
}
