package tokenfield

// Token is one committed chip. Its validity is decided once, when the token
// is created, and never changes afterwards.
type Token struct {
	ID   string
	Text string

	valid bool
}

// NewToken builds a token with a fixed validity flag.
func NewToken(id, text string, valid bool) Token {
	return Token{ID: id, Text: text, valid: valid}
}

// Valid reports the validator's verdict at creation time.
func (t Token) Valid() bool {
	return t.valid
}

// Store is the ordered sequence of displayed tokens.
// Insertion order is display order; removal never reorders.
type Store struct {
	tokens []Token
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds tok at the end. Tokens with empty text are ignored so the store
// never holds an empty chip.
func (s *Store) Append(tok Token) bool {
	if tok.Text == "" {
		return false
	}
	s.tokens = append(s.tokens, tok)
	return true
}

// Index returns the position of the token with id, or -1.
func (s *Store) Index(id string) int {
	for i, t := range s.tokens {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the token with id.
func (s *Store) Get(id string) (Token, bool) {
	i := s.Index(id)
	if i < 0 {
		return Token{}, false
	}
	return s.tokens[i], true
}

// Remove deletes the token with id. Unknown ids are a no-op.
func (s *Store) Remove(id string) (Token, bool) {
	i := s.Index(id)
	if i < 0 {
		return Token{}, false
	}
	tok := s.tokens[i]
	s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
	return tok, true
}

// RemoveLast deletes the most recently appended token. No-op when empty.
func (s *Store) RemoveLast() (Token, bool) {
	if len(s.tokens) == 0 {
		return Token{}, false
	}
	last := s.tokens[len(s.tokens)-1]
	s.tokens = s.tokens[:len(s.tokens)-1]
	return last, true
}

// Last returns the most recently appended token.
func (s *Store) Last() (Token, bool) {
	if len(s.tokens) == 0 {
		return Token{}, false
	}
	return s.tokens[len(s.tokens)-1], true
}

// Len returns the number of tokens.
func (s *Store) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of the tokens in display order.
func (s *Store) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Content returns every token text in display order.
func (s *Store) Content() []string {
	return s.collect(func(Token) bool { return true })
}

// ValidContent returns the texts of valid tokens in display order.
func (s *Store) ValidContent() []string {
	return s.collect(Token.Valid)
}

// InvalidContent returns the texts of invalid tokens in display order.
func (s *Store) InvalidContent() []string {
	return s.collect(func(t Token) bool { return !t.valid })
}

func (s *Store) collect(keep func(Token) bool) []string {
	content := []string{}
	for _, t := range s.tokens {
		if keep(t) {
			content = append(content, t.Text)
		}
	}
	return content
}
