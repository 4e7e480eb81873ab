package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/panestack/pkg/panestack/router"
)

// Example shows how requests submitted during a transition are serialized:
// the first one waits for Flush, the second is dropped.
func Example() {
	animating := true
	r := router.New(func() bool { return animating }, nil)

	open := func(name string) router.Request {
		return func() router.Outcome {
			fmt.Println("open", name)
			return router.OutcomeDone
		}
	}

	fmt.Println(r.Submit("details", open("details")))
	fmt.Println(r.Submit("settings", open("settings")))

	// The transition commits.
	animating = false
	out, ran := r.Flush()
	fmt.Println(out, ran)

	fmt.Println(r.Submit("settings", open("settings")))

	// Output:
	// deferred
	// deferred
	// open details
	// done true
	// open settings
	// done
}

// ExampleStack shows group bookkeeping as screens are pushed.
func ExampleStack() {
	s := router.NewStack()

	inbox := s.Push(router.BaseScreen{}, router.PushOptions{Position: -1})
	thread := s.Push(router.BaseScreen{}, router.PushOptions{Position: -1})
	compose := s.Push(router.BaseScreen{}, router.PushOptions{NewGroup: true, Position: -1})

	fmt.Println(inbox.GroupID, thread.GroupID, compose.GroupID)
	fmt.Println(s.SameGroupFromTop(1, 2), s.SameGroupFromTop(0, 1))

	s.Remove(compose)
	s.SyncGroup()
	fmt.Println(s.CurrentGroup(), s.Len())

	// Output:
	// 0 0 1
	// true false
	// 0 2
}
