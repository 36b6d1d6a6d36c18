// Package views holds the tab state machine deciding which storefront
// section is rendered and when section data is (re)loaded.
package views

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Tab identifies one of the three mutually exclusive storefront sections.
type Tab string

const (
	TabProducts Tab = "products"
	TabCart     Tab = "cart"
	TabOrders   Tab = "orders"
)

// ParseTab maps user input to a tab.
func ParseTab(value string) (Tab, error) {
	switch Tab(strings.ToLower(strings.TrimSpace(value))) {
	case TabProducts:
		return TabProducts, nil
	case TabCart:
		return TabCart, nil
	case TabOrders:
		return TabOrders, nil
	}
	return "", fmt.Errorf("unknown tab %q", value)
}

// Surface is the display the router drives. Implementations toggle section
// visibility and tab-selector highlighting; they hold no routing logic.
type Surface interface {
	// HighlightSelector clears all tab-selector highlights, then activates
	// the control named by trigger. An empty trigger only clears.
	HighlightSelector(trigger string)
	// ShowSection makes exactly the given section visible.
	ShowSection(tab Tab)
}

// Hooks are the side effects a transition runs after visibility changes.
// Entering orders reloads them from the gateway; entering cart re-renders
// the state store's current copy; entering products loads nothing.
type Hooks struct {
	ReloadOrders  func(ctx context.Context)
	RedisplayCart func(ctx context.Context)
}

// Router is the tab state machine. Exactly one tab is active at a time;
// every target is accepted, including the currently active one.
type Router struct {
	mu      sync.Mutex
	active  Tab
	surface Surface
	hooks   Hooks
}

// NewRouter starts on the products tab.
func NewRouter(surface Surface, hooks Hooks) *Router {
	return &Router{
		active:  TabProducts,
		surface: surface,
		hooks:   hooks,
	}
}

// Active reports the currently visible tab.
func (r *Router) Active() Tab {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Show transitions to target. The trigger names the UI control that caused
// the transition and is passed explicitly rather than read from any ambient
// event state.
func (r *Router) Show(ctx context.Context, target Tab, trigger string) {
	r.mu.Lock()
	r.active = target
	r.mu.Unlock()

	if r.surface != nil {
		r.surface.HighlightSelector(trigger)
		r.surface.ShowSection(target)
	}

	switch target {
	case TabOrders:
		if r.hooks.ReloadOrders != nil {
			r.hooks.ReloadOrders(ctx)
		}
	case TabCart:
		if r.hooks.RedisplayCart != nil {
			r.hooks.RedisplayCart(ctx)
		}
	}
}
