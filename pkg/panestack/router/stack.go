package router

import (
	"slices"

	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
)

// Stack manages the ordered sequence of screens and their group ids.
// All structural mutation of the navigation history goes through it.
type Stack struct {
	entries      []*Entry
	currentGroup int
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]*Entry, 0),
	}
}

// PushOptions controls how a screen joins the stack.
type PushOptions struct {
	NewGroup   bool // start a new group instead of joining the current one
	InnerGroup bool // tag the entry as an inner-group screen of the current group
	Position   int  // insertion index; negative appends on top
}

// Push asks the screen for permission to be created and adds it to the stack.
// A refusal leaves the stack untouched and returns nil.
func (s *Stack) Push(screen Screen, opts PushOptions) *Entry {
	if screen == nil || !screen.OnCreate() {
		return nil
	}

	if opts.NewGroup {
		s.currentGroup++
	}

	entry := newEntry(screen, s.currentGroup)
	if opts.InnerGroup {
		entry.InnerGroupID = s.currentGroup + 1
	}

	if opts.Position < 0 || opts.Position >= len(s.entries) {
		s.entries = append(s.entries, entry)
	} else {
		s.entries = slices.Insert(s.entries, opts.Position, entry)
	}
	return entry
}

// PushSheet appends a screen shown by the modal sheet presenter.
// Sheet entries never take part in group bookkeeping.
func (s *Stack) PushSheet(screen Screen) *Entry {
	if screen == nil {
		return nil
	}
	entry := newEntry(screen, constants.SheetGroupID)
	s.entries = append(s.entries, entry)
	return entry
}

// CanRemove reports whether the entry agrees to be destroyed.
func (s *Stack) CanRemove(e *Entry) bool {
	if e == nil || s.IndexOf(e) < 0 {
		return false
	}
	if gate, ok := e.Screen.(RemovalGate); ok {
		return gate.AllowRemoval()
	}
	return true
}

// Remove deletes the entry from the stack. It does not consult the removal
// gate; callers check CanRemove before starting the operation.
func (s *Stack) Remove(e *Entry) bool {
	idx := s.IndexOf(e)
	if idx < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, idx, idx+1)
	return true
}

// RemoveBelowTop removes up to count entries directly beneath the top entry
// and returns them nearest first. When any of them refuses removal nothing
// is removed and ok is false. Group ids are not recomputed.
func (s *Stack) RemoveBelowTop(count int) (removed []*Entry, ok bool) {
	top := len(s.entries) - 1
	if count <= 0 || top <= 0 {
		return nil, true
	}
	start := max(top-count, 0)
	for _, e := range s.entries[start:top] {
		if !s.CanRemove(e) {
			return nil, false
		}
	}

	removed = slices.Clone(s.entries[start:top])
	slices.Reverse(removed)
	s.entries = slices.Delete(s.entries, start, top)
	return removed, true
}

// PopUntil removes entries from start up to (but excluding) the entry at
// IndexOf(e)+offset. Nothing is removed when the end index is out of range
// or any entry in the range refuses removal.
func (s *Stack) PopUntil(e *Entry, offset, start int) []*Entry {
	idx := s.IndexOf(e)
	if idx < 0 {
		return nil
	}
	last := idx + offset
	if last < 0 || last >= len(s.entries) || start < 0 || start >= last {
		return nil
	}

	for _, candidate := range s.entries[start:last] {
		if candidate.GroupID != constants.SheetGroupID && !s.CanRemove(candidate) {
			return nil
		}
	}

	removed := slices.Clone(s.entries[start:last])
	s.entries = slices.Delete(s.entries, start, last)
	return removed
}

// Clear removes every entry, top first, and resets the current group.
func (s *Stack) Clear() []*Entry {
	removed := make([]*Entry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		removed = append(removed, s.entries[i])
	}
	s.entries = s.entries[:0]
	s.currentGroup = constants.NoGroup
	return removed
}

// SyncGroup recomputes the current group id from the top entry.
// Used after a pop that collapses a group.
func (s *Stack) SyncGroup() {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if g := s.entries[i].GroupID; g != constants.SheetGroupID {
			s.currentGroup = g
			return
		}
	}
	s.currentGroup = constants.NoGroup
}

// CurrentGroup returns the group id that same-group pushes join.
func (s *Stack) CurrentGroup() int {
	return s.currentGroup
}

// Top returns the top entry, or nil if the stack is empty.
func (s *Stack) Top() *Entry {
	return s.FromTop(0)
}

// FromTop returns the entry depth positions below the top, or nil.
func (s *Stack) FromTop(depth int) *Entry {
	idx := len(s.entries) - 1 - depth
	if depth < 0 || idx < 0 {
		return nil
	}
	return s.entries[idx]
}

// At returns the entry at index i counted from the bottom, or nil.
func (s *Stack) At(i int) *Entry {
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return s.entries[i]
}

// IndexOf returns the position of e from the bottom, or -1.
func (s *Stack) IndexOf(e *Entry) int {
	if e == nil {
		return -1
	}
	return slices.Index(s.entries, e)
}

// Find returns the entry wrapping screen, or nil.
func (s *Stack) Find(screen Screen) *Entry {
	for _, e := range s.entries {
		if e.Screen == screen {
			return e
		}
	}
	return nil
}

// SameGroupFromTop reports whether the entries a and b positions below the
// top both exist and share a group id.
func (s *Stack) SameGroupFromTop(a, b int) bool {
	ea, eb := s.FromTop(a), s.FromTop(b)
	return ea != nil && eb != nil && ea.GroupID == eb.GroupID
}

// Entries returns a copy of the entries, bottom first.
func (s *Stack) Entries() []*Entry {
	return slices.Clone(s.entries)
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}
