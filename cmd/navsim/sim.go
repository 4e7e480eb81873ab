package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BrandonKowalski/panestack/pkg/panestack"
	"github.com/BrandonKowalski/panestack/pkg/panestack/gesture"
	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
)

// settleLimit bounds the settle op so a stuck transition cannot hang a run.
const settleLimit = 10 * time.Second

// simScreen is a named screen whose visual root is a plain surface.
type simScreen struct {
	panestack.BaseScreen
	name   string
	refuse bool
	root   *pane.Surface
}

func (s *simScreen) Title() string { return s.name }

func (s *simScreen) AllowRemoval() bool { return !s.refuse }

func (s *simScreen) CreateVisualRoot(panestack.HostContext) panestack.VisualRoot {
	s.root = &pane.Surface{}
	return s.root
}

type simulator struct {
	c       *panestack.Container
	out     io.Writer
	frame   time.Duration
	every   bool
	clock   time.Duration
	screens map[string]*simScreen
	frames  int
}

func newSimulator(cfg panestack.Config, s *script, out io.Writer, every bool) (*simulator, error) {
	if s.SplitCapable != nil {
		cfg.SplitCapable = *s.SplitCapable
	}
	c, err := panestack.New(cfg, panestack.Host{})
	if err != nil {
		return nil, err
	}
	c.Measure(s.Width, s.Height)
	return &simulator{
		c:       c,
		out:     out,
		frame:   s.frame,
		every:   every,
		screens: make(map[string]*simScreen),
	}, nil
}

func (sim *simulator) run(s *script) error {
	for i, st := range s.Steps {
		result, err := sim.exec(st)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
		label := st.Op
		if st.Screen != "" {
			label += " " + st.Screen
		}
		fmt.Fprintf(sim.out, "step %d %s: %s\n", i+1, label, result)
		sim.print()
	}
	return nil
}

func (sim *simulator) screen(st step) *simScreen {
	s, ok := sim.screens[st.Screen]
	if !ok {
		s = &simScreen{name: st.Screen}
		sim.screens[st.Screen] = s
	}
	if st.Refuse {
		s.refuse = true
	}
	return s
}

func (sim *simulator) known(name string) (*simScreen, error) {
	s, ok := sim.screens[name]
	if !ok {
		return nil, fmt.Errorf("unknown screen %q", name)
	}
	return s, nil
}

func (sim *simulator) exec(st step) (string, error) {
	c := sim.c
	opts := panestack.NavOptions{Immediate: st.Immediate}

	switch st.Op {
	case "present":
		return c.Present(sim.screen(st), opts).String(), nil
	case "present_group":
		return c.PresentGroup(sim.screen(st), opts).String(), nil
	case "next":
		return c.Next(sim.screen(st), opts).String(), nil
	case "next_inner":
		return c.NextInnerGroup(sim.screen(st), opts).String(), nil
	case "replace":
		return c.Replace(sim.screen(st), st.Immediate).String(), nil
	case "close":
		openPrevious := st.OpenPrevious == nil || *st.OpenPrevious
		return c.CloseLast(!st.Immediate, openPrevious).String(), nil
	case "back":
		if c.BackPressed() {
			return "handled", nil
		}
		return "unhandled", nil
	case "remove":
		s, err := sim.known(st.Screen)
		if err != nil {
			return "", err
		}
		return c.RemoveScreen(s).String(), nil
	case "pop_until":
		s, err := sim.known(st.Screen)
		if err != nil {
			return "", err
		}
		return c.PopUntil(s, st.Offset, 0).String(), nil
	case "pop_screens":
		return c.PopScreens(st.Count, true).String(), nil
	case "orientation":
		return c.OrientationChanged(st.Split).String(), nil
	case "drag":
		return sim.drag(st), nil
	case "cancel":
		c.HandlePointer(&gesture.PointerEvent{Action: gesture.ActionCancel, Time: sim.clock, Synthetic: true})
		return c.GestureState().String(), nil
	case "tick":
		d := st.duration
		if d == 0 {
			d = sim.frame
		}
		sim.advance(d)
		return fmt.Sprintf("t=%s", sim.clock), nil
	case "settle":
		var waited time.Duration
		for c.IsBusy() && waited < settleLimit {
			sim.advance(sim.frame)
			waited += sim.frame
		}
		if c.IsBusy() {
			return "", fmt.Errorf("still busy after %s", settleLimit)
		}
		return fmt.Sprintf("t=%s", sim.clock), nil
	}
	return "", fmt.Errorf("unknown op %q", st.Op)
}

// drag plays a pointer down, st.Moves evenly spaced moves and an up spread
// over st.duration, then reports the gesture state right after release.
func (sim *simulator) drag(st step) string {
	c := sim.c
	c.HandlePointer(&gesture.PointerEvent{Action: gesture.ActionDown, X: st.X, Y: st.Y, Time: sim.clock})

	interval := st.duration / time.Duration(st.Moves)
	for i := 1; i <= st.Moves; i++ {
		sim.advance(interval)
		f := float64(i) / float64(st.Moves)
		c.HandlePointer(&gesture.PointerEvent{
			Action: gesture.ActionMove,
			X:      st.X + st.DX*f,
			Y:      st.Y + st.DY*f,
			Time:   sim.clock,
		})
	}

	up := gesture.PointerEvent{Action: gesture.ActionUp, X: st.X + st.DX, Y: st.Y + st.DY, Time: sim.clock}
	if st.Velocity != 0 {
		up.HasVelocity = true
		up.VelocityX = st.Velocity
	}
	c.HandlePointer(&up)
	return c.GestureState().String()
}

func (sim *simulator) advance(d time.Duration) {
	for d > 0 {
		step := min(d, sim.frame)
		sim.c.Tick(step)
		sim.clock += step
		d -= step
		sim.frames++
		if sim.every {
			fmt.Fprintf(sim.out, "frame %d t=%s\n", sim.frames, sim.clock)
			sim.print()
		}
	}
}

func (sim *simulator) print() {
	l := sim.c.Layout()
	front := sim.c.Panes().Front()
	for _, p := range l.Front.Placements {
		role, _ := front.RoleOf(p.Pane)
		fmt.Fprintf(sim.out, "  %-9s %s %s\n", role, formatRect(p.Rect), sim.hosted(p.Pane))
	}
	if l.Back.Visible {
		back := sim.c.Panes().Back()
		for _, p := range l.Back.Placements {
			role, _ := back.RoleOf(p.Pane)
			fmt.Fprintf(sim.out, "  back/%-4s %s %s\n", shortRole(role), formatRect(p.Rect), sim.hosted(p.Pane))
		}
	}

	names := make([]string, 0, sim.c.Len())
	for _, s := range sim.c.Screens() {
		if t, ok := s.(panestack.Titled); ok {
			names = append(names, t.Title())
		}
	}
	fmt.Fprintf(sim.out, "  stack     [%s]\n", strings.Join(names, " "))
}

func (sim *simulator) hosted(p *pane.Pane) string {
	var names []string
	for _, root := range p.Roots() {
		for name, s := range sim.screens {
			if s.root != nil && root == pane.VisualRoot(s.root) {
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

func formatRect(r pane.Rect) string {
	return fmt.Sprintf("x=%d w=%d", r.X, r.W)
}

func shortRole(r pane.Role) string {
	switch r {
	case pane.RolePrimary:
		return "pri"
	case pane.RoleSecondary:
		return "sec"
	default:
		return "tra"
	}
}
