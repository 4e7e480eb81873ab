// Package internal contains the infrastructure shared by the navigation core
// and its platform hosts: logging, host signals and announcements.
// Types and functions in this package are not part of the public API.
package internal

import "go.uber.org/atomic"

// Signals are the host-owned values the core reads but never owns. Hosts
// write them from their own goroutines; the control thread reads them.
type Signals struct {
	keyboardVisible *atomic.Bool
	statusBarHeight *atomic.Int32
	backRequests    *atomic.Int32
}

// NewSignals returns signals with the keyboard hidden and no inset.
func NewSignals() *Signals {
	return &Signals{
		keyboardVisible: atomic.NewBool(false),
		statusBarHeight: atomic.NewInt32(0),
		backRequests:    atomic.NewInt32(0),
	}
}

func (s *Signals) SetKeyboardVisible(v bool) {
	s.keyboardVisible.Store(v)
}

func (s *Signals) KeyboardVisible() bool {
	return s.keyboardVisible.Load()
}

// DismissKeyboard clears the flag and reports whether it was set.
func (s *Signals) DismissKeyboard() bool {
	return s.keyboardVisible.CompareAndSwap(true, false)
}

func (s *Signals) SetStatusBarHeight(h int32) {
	s.statusBarHeight.Store(max(h, 0))
}

func (s *Signals) StatusBarHeight() int32 {
	return s.statusBarHeight.Load()
}

// RequestBack records a back press coming from a non-control goroutine.
func (s *Signals) RequestBack() {
	s.backRequests.Inc()
}

// TakeBackRequests returns and clears the pending back presses.
func (s *Signals) TakeBackRequests() int32 {
	return s.backRequests.Swap(0)
}
