// Package list implements a lazily rendered vertical list of items.
package list

// Item represents a single item in a lazy list.
type Item interface {
	// Render returns the string representation of the item at the given
	// width.
	Render(width int) string
}

// Focusable represents an item aware of focus state changes.
type Focusable interface {
	// SetFocused sets the focus state of the item.
	SetFocused(focused bool)
}
