// Package cursor provides a read-only cursor over a slice with bounded
// lookahead and lookbehind.
package cursor

// Cursor walks a slice front to back. The zero value is not usable; use New.
type Cursor[T any] struct {
	items []T
	pos   int
}

// New returns a cursor positioned at the first element of items.
func New[T any](items []T) *Cursor[T] {
	return &Cursor[T]{items: items}
}

// Valid reports whether the cursor points at an element.
func (c *Cursor[T]) Valid() bool {
	return c.pos >= 0 && c.pos < len(c.items)
}

// Index returns the current position.
func (c *Cursor[T]) Index() int {
	return c.pos
}

// Len returns the number of elements in the underlying slice.
func (c *Cursor[T]) Len() int {
	return len(c.items)
}

// Current returns the element under the cursor.
// The boolean is false when the cursor is exhausted.
func (c *Cursor[T]) Current() (T, bool) {
	return c.Peek(0)
}

// Peek returns the element n positions away from the cursor without moving it.
// Negative n looks behind.
func (c *Cursor[T]) Peek(n int) (T, bool) {
	idx := c.pos + n
	if idx < 0 || idx >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[idx], true
}

// Advance moves the cursor forward by one element.
func (c *Cursor[T]) Advance() {
	if c.pos < len(c.items) {
		c.pos++
	}
}

// AdvanceWhile consumes the elements following the current one for as long
// as pred holds and returns them. The cursor is left on the last consumed
// element, so a following Advance moves past the whole run.
func (c *Cursor[T]) AdvanceWhile(pred func(T) bool) []T {
	var taken []T
	for {
		next, ok := c.Peek(1)
		if !ok || !pred(next) {
			return taken
		}
		taken = append(taken, next)
		c.pos++
	}
}
