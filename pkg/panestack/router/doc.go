// Package router holds the navigation history and the request serializer
// that keeps it consistent with the transition engine.
//
// Stack is the ordered sequence of screens. Every entry belongs to a group;
// screens sharing a group may be shown side by side in split mode. Group ids
// never decrease from bottom to top: pushing with NewGroup bumps the current
// group, pushing without it joins the current one, and a pop that collapses a
// group resyncs the current group from the new top.
//
// Router decides whether a navigation request runs now or later:
//
//	r := router.New(engine.Busy, logger)
//
//	out := r.Submit("present", func() router.Outcome {
//	    return present(screen)
//	})
//	// out is OutcomeDeferred while a transition runs.
//
//	// When the transition commits:
//	r.Flush()
//
// # Dropped Requests
//
// Only one request is kept while busy. A second request submitted while the
// slot is occupied is dropped, and Submit reports OutcomeDeferred for both, so
// callers cannot tell a queued request from a dropped one. Callers must not
// assume at-least-once delivery.
package router
