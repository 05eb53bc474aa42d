package tokenfield

// Validator classifies token text. It is called exactly once per token, at
// creation, on the goroutine handling the event. It must be total and must not
// panic; a panicking validator leaves the field in an undefined state.
type Validator func(text string) bool

// ChangeFunc receives the full content after every mutation. The slice is a
// fresh copy owned by the callee.
type ChangeFunc func(content []string)

func (v Validator) check(text string) bool {
	if v == nil {
		return true
	}
	return v(text)
}
