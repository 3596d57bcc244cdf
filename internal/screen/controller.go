package screen

import "go.uber.org/zap"

// Element is anything whose visibility the controller toggles
type Element interface {
	SetVisible(visible bool)
}

// NavButton is a primary navigation button
type NavButton interface {
	SetActive(active bool)
}

// Registry maps screen ids to their UI handles. It is filled once at startup.
type Registry struct {
	panels     map[ID]Element
	nav        map[ID]NavButton
	primaryNav Element
	actionsBar Element
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		panels: make(map[ID]Element),
		nav:    make(map[ID]NavButton),
	}
}

// Panel registers the container shown for id
func (r *Registry) Panel(id ID, el Element) *Registry {
	r.panels[id] = el
	return r
}

// Nav registers the navigation button targeting id. Only primary nav
// destinations are accepted; others are ignored.
func (r *Registry) Nav(id ID, btn NavButton) *Registry {
	if id.IsPrimaryNav() {
		r.nav[id] = btn
	}
	return r
}

// Bars registers the primary navigation bar and the book actions bar. Either
// may be nil on routes that have no such bar.
func (r *Registry) Bars(primaryNav, actionsBar Element) *Registry {
	r.primaryNav = primaryNav
	r.actionsBar = actionsBar
	return r
}

// Controller shows one screen at a time for a single route
type Controller struct {
	route    Route
	reg      *Registry
	current  ID
	onEnter  map[ID]func()
	observer func(ID)
	log      *zap.Logger
}

// NewController creates a controller for route. No screen is visible until
// the first Show.
func NewController(route Route, reg *Registry, log *zap.Logger) *Controller {
	return &Controller{
		route:   route,
		reg:     reg,
		onEnter: make(map[ID]func()),
		log:     log,
	}
}

// OnEnter registers fn to run every time id is shown
func (c *Controller) OnEnter(id ID, fn func()) {
	c.onEnter[id] = fn
}

// Observe registers fn to be called with every screen shown
func (c *Controller) Observe(fn func(ID)) {
	c.observer = fn
}

// Route returns the route this controller serves
func (c *Controller) Route() Route { return c.route }

// Current returns the visible screen, or None before the first Show
func (c *Controller) Current() ID { return c.current }

// Show makes target the only visible screen. A target that is not hosted by
// the route, or has no registered panel, is ignored.
func (c *Controller) Show(target ID) {
	panel, ok := c.reg.panels[target]
	if !ok || !c.route.Hosts(target) {
		c.log.Debug("Ignoring unknown screen",
			zap.Stringer("route", c.route),
			zap.Stringer("screen", target),
		)
		return
	}

	for id, p := range c.reg.panels {
		if id != target {
			p.SetVisible(false)
		}
	}
	panel.SetVisible(true)

	details := target == BookDetails
	if c.reg.primaryNav != nil {
		c.reg.primaryNav.SetVisible(!details)
	}
	if c.reg.actionsBar != nil {
		c.reg.actionsBar.SetVisible(details)
	}

	for id, btn := range c.reg.nav {
		btn.SetActive(id == target)
	}

	c.current = target
	c.log.Debug("Screen shown", zap.Stringer("route", c.route), zap.Stringer("screen", target))

	if fn, ok := c.onEnter[target]; ok {
		fn()
	}
	if c.observer != nil {
		c.observer(target)
	}
}
