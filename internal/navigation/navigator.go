package navigation

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is a lifecycle notification delivered to screen listeners
type Event string

const (
	// EventWillFocus is sent when a screen becomes the visible one
	EventWillFocus Event = "willFocus"

	// EventWillBlur is sent when a screen stops being the visible one
	EventWillBlur Event = "willBlur"
)

// Route identifies a screen and its parameters
type Route struct {
	Name   string
	Params map[string]string
}

// Param returns a route parameter or an empty string
func (r Route) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[name]
}

func (r Route) equal(other Route) bool {
	if r.Name != other.Name || len(r.Params) != len(other.Params) {
		return false
	}
	for k, v := range r.Params {
		if ov, ok := other.Params[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Activation is a single period during which a route is focused. Its context
// is cancelled when the route is blurred, replaced or popped.
type Activation struct {
	ID    string
	Route Route
	ctx   context.Context
}

// Context returns the cancellation token of this activation
func (a Activation) Context() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

// Param returns a route parameter of this activation
func (a Activation) Param(name string) string {
	return a.Route.Param(name)
}

// Active reports whether the route is still focused
func (a Activation) Active() bool {
	return a.Context().Err() == nil
}

// Handler receives lifecycle events
type Handler func(Activation)

// Subscription is a registered listener. Remove releases it exactly once.
type Subscription struct {
	once   sync.Once
	remove func()
}

// Remove unregisters the listener; further calls are no-ops
func (s *Subscription) Remove() {
	if s == nil {
		return
	}
	s.once.Do(s.remove)
}

type listener struct {
	screen  string
	event   Event
	handler Handler
}

type frame struct {
	activation Activation
	cancel     context.CancelFunc
}

type notification struct {
	handler    Handler
	activation Activation
}

// Navigator is a stack of routes with focus lifecycle events
type Navigator struct {
	mu        sync.Mutex
	stack     []*frame
	listeners map[uint64]listener
	nextID    uint64
	onChange  []func(Route)
	logger    *zap.Logger
}

// New creates an empty navigator
func New(logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{
		listeners: make(map[uint64]listener),
		logger:    logger.Named("navigation"),
	}
}

// AddListener subscribes handler to event for the named screen
func (n *Navigator) AddListener(screen string, event Event, handler Handler) *Subscription {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.listeners[id] = listener{screen: screen, event: event, handler: handler}
	n.mu.Unlock()

	return &Subscription{remove: func() {
		n.mu.Lock()
		delete(n.listeners, id)
		n.mu.Unlock()
	}}
}

// OnRouteChange registers a callback invoked after every focus change
func (n *Navigator) OnRouteChange(fn func(Route)) {
	n.mu.Lock()
	n.onChange = append(n.onChange, fn)
	n.mu.Unlock()
}

// Navigate pushes a route and focuses it. Navigating to the route that is
// already on top does nothing.
func (n *Navigator) Navigate(name string, params map[string]string) {
	route := Route{Name: name, Params: copyParams(params)}

	n.mu.Lock()
	if top := n.top(); top != nil && top.activation.Route.equal(route) {
		n.mu.Unlock()
		return
	}
	pending := n.blurTopLocked()
	pending = append(pending, n.pushLocked(route)...)
	changes := n.onChange
	n.mu.Unlock()

	n.logger.Debug("Navigate", zap.String("screen", name), zap.Any("params", params))
	n.dispatch(pending, changes, route)
}

// Reset replaces the whole stack with a single route
func (n *Navigator) Reset(name string, params map[string]string) {
	route := Route{Name: name, Params: copyParams(params)}

	n.mu.Lock()
	pending := n.blurTopLocked()
	for _, f := range n.stack {
		f.cancel()
	}
	n.stack = nil
	pending = append(pending, n.pushLocked(route)...)
	changes := n.onChange
	n.mu.Unlock()

	n.logger.Debug("Reset", zap.String("screen", name))
	n.dispatch(pending, changes, route)
}

// GoBack pops the current route and refocuses the previous one.
// It returns false when there is nothing to go back to.
func (n *Navigator) GoBack() bool {
	n.mu.Lock()
	if len(n.stack) < 2 {
		n.mu.Unlock()
		return false
	}
	pending := n.blurTopLocked()
	n.stack = n.stack[:len(n.stack)-1]

	prev := n.stack[len(n.stack)-1]
	ctx, cancel := context.WithCancel(context.Background())
	prev.activation = Activation{ID: uuid.NewString(), Route: prev.activation.Route, ctx: ctx}
	prev.cancel = cancel
	pending = append(pending, n.collectLocked(prev.activation, EventWillFocus)...)
	route := prev.activation.Route
	changes := n.onChange
	n.mu.Unlock()

	n.logger.Debug("GoBack", zap.String("screen", route.Name))
	n.dispatch(pending, changes, route)
	return true
}

// Current returns the activation of the focused route
func (n *Navigator) Current() (Activation, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	top := n.top()
	if top == nil {
		return Activation{}, false
	}
	return top.activation, true
}

// GetParam returns a parameter of the focused route
func (n *Navigator) GetParam(name string) string {
	a, ok := n.Current()
	if !ok {
		return ""
	}
	return a.Param(name)
}

// Depth returns the number of routes on the stack
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

// CanGoBack reports whether GoBack would pop a route
func (n *Navigator) CanGoBack() bool {
	return n.Depth() > 1
}

func (n *Navigator) top() *frame {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// blurTopLocked cancels the focused activation and collects blur handlers
func (n *Navigator) blurTopLocked() []notification {
	top := n.top()
	if top == nil {
		return nil
	}
	top.cancel()
	return n.collectLocked(top.activation, EventWillBlur)
}

func (n *Navigator) pushLocked(route Route) []notification {
	ctx, cancel := context.WithCancel(context.Background())
	f := &frame{
		activation: Activation{ID: uuid.NewString(), Route: route, ctx: ctx},
		cancel:     cancel,
	}
	n.stack = append(n.stack, f)
	return n.collectLocked(f.activation, EventWillFocus)
}

func (n *Navigator) collectLocked(a Activation, event Event) []notification {
	var result []notification
	for id := uint64(1); id <= n.nextID; id++ {
		l, ok := n.listeners[id]
		if !ok || l.screen != a.Route.Name || l.event != event {
			continue
		}
		result = append(result, notification{handler: l.handler, activation: a})
	}
	return result
}

// dispatch runs handlers outside the lock so they may navigate again
func (n *Navigator) dispatch(pending []notification, changes []func(Route), route Route) {
	for _, p := range pending {
		p.handler(p.activation)
	}
	for _, fn := range changes {
		fn(route)
	}
}

func copyParams(params map[string]string) map[string]string {
	if params == nil {
		return nil
	}
	result := make(map[string]string, len(params))
	for k, v := range params {
		result[k] = v
	}
	return result
}
