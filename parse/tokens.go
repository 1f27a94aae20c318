package parse

import "slices"

// cursor is a read-once view of the token list for a single pass.
type cursor struct {
	tokens []string
	next   int
}

func newCursor(tokens []string) *cursor {
	return &cursor{tokens: tokens}
}

func (c *cursor) more() bool {
	return c.next < len(c.tokens)
}

// pop consumes and returns the next token.
func (c *cursor) pop() string {
	token := c.tokens[c.next]
	c.next++
	return token
}

// drain consumes every remaining token. The result is a copy, so captured
// bindings stay valid if the caller reuses its token slice.
func (c *cursor) drain() []string {
	rest := slices.Clone(c.tokens[c.next:])
	c.next = len(c.tokens)
	return rest
}
