package router

import (
	"testing"

	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
	"github.com/stretchr/testify/require"
)

type testScreen struct {
	BaseScreen
	name     string
	refuse   bool
	noRemove bool

	resumes, pauses, destroys int
}

func (s *testScreen) OnCreate() bool     { return !s.refuse }
func (s *testScreen) AllowRemoval() bool { return !s.noRemove }
func (s *testScreen) OnResume()          { s.resumes++ }
func (s *testScreen) OnPause()           { s.pauses++ }
func (s *testScreen) OnDestroy()         { s.destroys++ }
func (s *testScreen) Title() string      { return s.name }

func push(s *Stack, name string, newGroup bool) *Entry {
	return s.Push(&testScreen{name: name}, PushOptions{NewGroup: newGroup, Position: -1})
}

func names(s *Stack) []string {
	var out []string
	for _, e := range s.Entries() {
		out = append(out, e.Title())
	}
	return out
}

func TestPushRefusedLeavesStackUntouched(t *testing.T) {
	s := NewStack()
	push(s, "a", true)

	e := s.Push(&testScreen{name: "b", refuse: true}, PushOptions{NewGroup: true, Position: -1})

	require.Nil(t, e)
	require.Equal(t, []string{"a"}, names(s))
	require.Equal(t, 1, s.CurrentGroup())
}

func TestPushGroupsNeverDecrease(t *testing.T) {
	s := NewStack()
	push(s, "a", false)
	push(s, "b", true)
	push(s, "c", false)
	push(s, "d", true)

	prev := -1
	for _, e := range s.Entries() {
		require.GreaterOrEqual(t, e.GroupID, prev)
		prev = e.GroupID
	}
	require.Equal(t, 2, s.CurrentGroup())
}

func TestPushInnerGroupAndPosition(t *testing.T) {
	s := NewStack()
	push(s, "a", true)
	push(s, "c", false)

	inner := s.Push(&testScreen{name: "b"}, PushOptions{InnerGroup: true, Position: 1})

	require.Equal(t, []string{"a", "b", "c"}, names(s))
	require.Equal(t, 2, inner.InnerGroupID)
	require.Equal(t, 1, inner.GroupID)
}

func TestSheetEntriesSkipGroupSync(t *testing.T) {
	s := NewStack()
	push(s, "a", true)
	sheet := s.PushSheet(&testScreen{name: "sheet"})

	require.True(t, sheet.IsSheet())
	require.Equal(t, constants.SheetGroupID, sheet.GroupID)

	s.SyncGroup()
	require.Equal(t, 1, s.CurrentGroup())
}

func TestRemoveBelowTop(t *testing.T) {
	t.Run("nearest first", func(t *testing.T) {
		s := NewStack()
		push(s, "a", false)
		push(s, "b", false)
		push(s, "c", false)
		push(s, "d", false)

		removed, ok := s.RemoveBelowTop(2)

		require.True(t, ok)
		require.Len(t, removed, 2)
		require.Equal(t, "c", removed[0].Title())
		require.Equal(t, "b", removed[1].Title())
		require.Equal(t, []string{"a", "d"}, names(s))
	})

	t.Run("count past the bottom", func(t *testing.T) {
		s := NewStack()
		push(s, "a", false)
		push(s, "b", false)

		removed, ok := s.RemoveBelowTop(5)

		require.True(t, ok)
		require.Len(t, removed, 1)
		require.Equal(t, []string{"b"}, names(s))
	})

	t.Run("refusal removes nothing", func(t *testing.T) {
		s := NewStack()
		push(s, "a", false)
		s.Push(&testScreen{name: "b", noRemove: true}, PushOptions{Position: -1})
		push(s, "c", false)
		push(s, "d", false)

		removed, ok := s.RemoveBelowTop(3)

		require.False(t, ok)
		require.Empty(t, removed)
		require.Equal(t, []string{"a", "b", "c", "d"}, names(s))
	})
}

func TestPopUntil(t *testing.T) {
	t.Run("removes the range", func(t *testing.T) {
		s := NewStack()
		push(s, "a", false)
		b := push(s, "b", false)
		push(s, "c", false)
		push(s, "d", false)

		removed := s.PopUntil(b, 2, 1)

		require.Len(t, removed, 2)
		require.Equal(t, []string{"a", "d"}, names(s))
	})

	t.Run("all or nothing", func(t *testing.T) {
		s := NewStack()
		push(s, "a", false)
		s.Push(&testScreen{name: "b", noRemove: true}, PushOptions{Position: -1})
		c := push(s, "c", false)

		require.Nil(t, s.PopUntil(c, 0, 0))
		require.Equal(t, 3, s.Len())
	})

	t.Run("out of range", func(t *testing.T) {
		s := NewStack()
		a := push(s, "a", false)
		push(s, "b", false)

		require.Nil(t, s.PopUntil(a, 5, 0))
		require.Nil(t, s.PopUntil(a, 1, 1))
		require.Nil(t, s.PopUntil(&Entry{}, 0, 0))
	})
}

func TestClearResetsGroup(t *testing.T) {
	s := NewStack()
	push(s, "a", true)
	push(s, "b", true)

	removed := s.Clear()

	require.Equal(t, "b", removed[0].Title())
	require.True(t, s.IsEmpty())
	require.Equal(t, constants.NoGroup, s.CurrentGroup())
}

func TestFromTopAndAt(t *testing.T) {
	s := NewStack()
	a := push(s, "a", false)
	b := push(s, "b", false)

	require.Same(t, b, s.Top())
	require.Same(t, a, s.FromTop(1))
	require.Nil(t, s.FromTop(2))
	require.Nil(t, s.FromTop(-1))
	require.Same(t, a, s.At(0))
	require.Nil(t, s.At(2))
	require.Same(t, b, s.Find(b.Screen))
}

func TestEntryLifecycle(t *testing.T) {
	scr := &testScreen{name: "a"}
	e := newEntry(scr, 0)

	require.True(t, e.Resume())
	require.False(t, e.Resume())
	require.True(t, e.Pause())
	require.False(t, e.Pause())
	require.True(t, e.Resume())

	require.True(t, e.Destroy())
	require.False(t, e.Destroy())
	require.False(t, e.Resume())

	require.Equal(t, 2, scr.resumes)
	require.Equal(t, 2, scr.pauses)
	require.Equal(t, 1, scr.destroys)
	require.Equal(t, LifecycleDestroyed, e.State())
}

func TestEntryRootCached(t *testing.T) {
	e := newEntry(&testScreen{}, 0)

	root, created := e.Root(HostContext{Density: 1})
	require.True(t, created)
	again, created := e.Root(HostContext{Density: 1})
	require.False(t, created)
	require.Same(t, root, again)

	e.Destroy()
	require.Nil(t, e.CachedRoot())
}
