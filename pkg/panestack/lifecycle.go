package panestack

import (
	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
	"github.com/BrandonKowalski/panestack/pkg/panestack/pane"
	"github.com/BrandonKowalski/panestack/pkg/panestack/router"
)

// attach hosts the entry's root (and action bar) in p, building the root on
// first use.
func (c *Container) attach(e *router.Entry, p *pane.Pane) {
	if e.Host() != nil && e.Host() != p {
		c.detach(e)
	}
	root, created := e.Root(c.hostContext())
	p.Attach(root)
	var barHost *pane.Pane
	if bar := e.ActionBar(); bar != nil {
		p.AttachBar(bar)
		barHost = p
	}
	e.SetHosts(p, barHost)
	if created {
		e.Screen.OnViewAttached()
	}
}

// detach takes the entry's root out of its pane. If the recorded host no
// longer holds the root (a role swap raced the removal), every pane is
// searched instead; a root found nowhere is ignored.
func (c *Container) detach(e *router.Entry) {
	root := e.CachedRoot()
	host, barHost := e.Host(), e.BarHost()
	if root == nil || host == nil {
		return
	}

	if err := host.Detach(root); err != nil {
		if !c.set.DetachEverywhere(root) {
			c.logger.Debug("root already detached", "screen", e.Title(), "error", err)
		}
	}
	if barHost != nil {
		if bar := e.ActionBar(); bar != nil {
			_ = barHost.DetachBar(bar)
		}
	}
	e.SetHosts(nil, nil)
	e.Screen.OnRemoveFromParent()
}

// resume makes the entry visible and interactive. inFirst also tells it
// that it is the top of the stack.
func (c *Container) resume(e *router.Entry, inFirst bool) {
	if e == nil {
		return
	}
	if e.State() != router.LifecycleResumed {
		e.Screen.OnBecomeFullyVisible()
		e.Resume()
	}
	if inFirst {
		e.Screen.OnGetFirstInStack()
	}
}

// pause takes the entry out of the visible panes, keeping its cached root.
func (c *Container) pause(e *router.Entry) {
	if e == nil {
		return
	}
	e.Pause()
	c.detach(e)
}

// finish destroys the entry and removes it from the stack.
func (c *Container) finish(e *router.Entry) {
	if e == nil {
		return
	}
	c.pause(e)
	e.Destroy()
	c.stack.Remove(e)
}

// discard destroys an entry that was already taken out of the stack.
func (c *Container) discard(e *router.Entry) {
	if e.IsSheet() {
		if c.host.Sheets != nil {
			c.host.Sheets.DismissSheet(e.Screen)
		}
		e.Destroy()
		return
	}
	e.Screen.OnPrePause()
	c.pause(e)
	e.Destroy()
}

// hostedIn returns the stack entries whose root lives in g.
func (c *Container) hostedIn(g *pane.Group) []*router.Entry {
	var out []*router.Entry
	for _, e := range c.stack.Entries() {
		if h := e.Host(); h != nil {
			if _, ok := g.RoleOf(h); ok {
				out = append(out, e)
			}
		}
	}
	return out
}

// entryIn returns the entry hosted in p, or nil.
func (c *Container) entryIn(p *pane.Pane) *router.Entry {
	for _, e := range c.stack.Entries() {
		if e.Host() == p {
			return e
		}
	}
	return nil
}

// clearGroup detaches everything hosted in g and resets it.
func (c *Container) clearGroup(g *pane.Group) {
	for _, e := range c.hostedIn(g) {
		c.detach(e)
	}
	g.Reset()
}

// topPair returns the top non-sheet entry and, when the split layout is
// active and the entry beneath it shares its group, that entry.
func (c *Container) topPair() (top, partner *router.Entry) {
	var rest []*router.Entry
	entries := c.stack.Entries()
	for i := len(entries) - 1; i >= 0 && len(rest) < 2; i-- {
		if !entries[i].IsSheet() {
			rest = append(rest, entries[i])
		}
	}
	if len(rest) == 0 {
		return nil, nil
	}
	top = rest[0]
	if c.splitCapable && len(rest) > 1 && rest[1].GroupID == top.GroupID {
		partner = rest[1]
	}
	return top, partner
}

// settle rebuilds the visible panes from the stack without animation:
// the top entry and, in split mode, its same-group predecessor.
func (c *Container) settle() {
	top, partner := c.topPair()
	keep := func(e *router.Entry) bool { return e == top || e == partner }

	for _, g := range []*pane.Group{c.set.Front(), c.set.Back()} {
		for _, e := range c.hostedIn(g) {
			if keep(e) {
				c.detach(e)
			} else {
				c.pause(e)
			}
		}
		g.Reset()
	}
	c.set.Back().Visible = false
	c.set.Front().Visible = true
	c.set.Underlay = false

	if top == nil {
		return
	}
	front := c.set.Front()
	if partner != nil {
		front.EnsureSecondary()
		front.Primary.UpdateParams(constants.SplitPrimaryWeight, 0)
		front.Secondary.UpdateParams(constants.SplitSecondaryWeight, 0)
		c.attach(partner, front.Primary)
		c.attach(top, front.Secondary)
		partner.SetIndicator(0)
		top.SetIndicator(1)
		c.resume(partner, false)
	} else {
		c.attach(top, front.Primary)
		top.SetIndicator(0)
	}
	c.resume(top, false)
}

func (c *Container) hideKeyboardFor(screen Screen) {
	if h, ok := screen.(KeyboardHider); ok && h.HideKeyboardOnShow() {
		c.dismissKeyboard()
	}
}
