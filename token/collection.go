package token

// Collection is an ordered sequence of tokens with value semantics
// Every operation returns a new collection; the receiver is never mutated
type Collection struct {
	tokens []Token
}

// Len returns the number of tokens
func (c Collection) Len() int {
	return len(c.tokens)
}

// Tokens returns a copy of the tokens in insertion order
func (c Collection) Tokens() []Token {
	out := make([]Token, len(c.tokens))
	copy(out, c.tokens)
	return out
}

// At returns the token at index i
func (c Collection) At(i int) (Token, bool) {
	if i < 0 || i >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[i], true
}

// Last returns the most recently appended token
func (c Collection) Last() (Token, bool) {
	return c.At(len(c.tokens) - 1)
}

// IndexOf returns the position of the token with the given ID, or -1
func (c Collection) IndexOf(id ID) int {
	for i, t := range c.tokens {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Add appends one fresh token
func (c Collection) Add() Collection {
	return c.AddN(1)
}

// AddN appends n fresh tokens; n <= 0 returns the collection unchanged
func (c Collection) AddN(n int) Collection {
	if n <= 0 {
		return c
	}
	next := make([]Token, len(c.tokens), len(c.tokens)+n)
	copy(next, c.tokens)
	for i := 0; i < n; i++ {
		next = append(next, New())
	}
	return Collection{tokens: next}
}

// RemoveLast drops the most recently appended token if non-empty
func (c Collection) RemoveLast() Collection {
	if len(c.tokens) == 0 {
		return c
	}
	next := make([]Token, len(c.tokens)-1)
	copy(next, c.tokens[:len(c.tokens)-1])
	return Collection{tokens: next}
}

// Remove drops the token with the given ID, keeping the order of the rest
// Unknown IDs return the collection unchanged
func (c Collection) Remove(id ID) Collection {
	idx := c.IndexOf(id)
	if idx < 0 {
		return c
	}
	next := make([]Token, 0, len(c.tokens)-1)
	next = append(next, c.tokens[:idx]...)
	next = append(next, c.tokens[idx+1:]...)
	return Collection{tokens: next}
}
