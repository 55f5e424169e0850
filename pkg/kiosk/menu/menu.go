// Package menu holds the menu model and the action dispatcher.
package menu

import "errors"

var (
	ErrNoEntries       = errors.New("menu has no entries")
	ErrIndexOutOfRange = errors.New("menu index out of range")
)

// Menu is an ordered, fixed list of entries with a selection that wraps at
// both ends. The selection is always a valid index.
type Menu struct {
	entries  []Entry
	selected int
}

func New(entries []Entry) (*Menu, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return &Menu{entries: append([]Entry(nil), entries...)}, nil
}

func (m *Menu) Len() int {
	return len(m.entries)
}

func (m *Menu) Selected() int {
	return m.selected
}

func (m *Menu) Current() Entry {
	return m.entries[m.selected]
}

// Entry returns the entry at index.
func (m *Menu) Entry(index int) (Entry, error) {
	if index < 0 || index >= len(m.entries) {
		return Entry{}, ErrIndexOutOfRange
	}
	return m.entries[index], nil
}

// Entries returns a copy of the entries in display order.
func (m *Menu) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Move shifts the selection by delta with wraparound.
func (m *Menu) Move(delta int) {
	n := len(m.entries)
	m.selected = ((m.selected+delta)%n + n) % n
}

func (m *Menu) MoveUp() {
	m.Move(-1)
}

func (m *Menu) MoveDown() {
	m.Move(1)
}

// Select sets the selection, clamped into range.
func (m *Menu) Select(index int) {
	m.selected = max(0, min(index, len(m.entries)-1))
}
