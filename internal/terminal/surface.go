// Package terminal renders the storefront into a line-oriented terminal.
// It is a dumb display: it stores the latest fragment per section and
// redraws whichever section the router made visible. All routing and data
// decisions live elsewhere.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/angelmondragon/storefront/internal/notify"
	"github.com/angelmondragon/storefront/internal/views"
)

type Surface struct {
	mu          sync.Mutex
	out         io.Writer
	userEmail   string
	cartCount   int
	active      views.Tab
	highlighted string
	fragments   map[views.Tab]string
}

func NewSurface(out io.Writer) *Surface {
	return &Surface{
		out:    out,
		active: views.TabProducts,
		fragments: map[views.Tab]string{
			views.TabProducts: "",
			views.TabCart:     "",
			views.TabOrders:   "",
		},
	}
}

func (s *Surface) HighlightSelector(trigger string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highlighted = trigger
}

func (s *Surface) ShowSection(tab views.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = tab
	s.redrawLocked()
}

func (s *Surface) SetUserEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userEmail = email
}

func (s *Surface) SetCartCount(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartCount = count
}

func (s *Surface) RenderProducts(fragment string) {
	s.setFragment(views.TabProducts, fragment)
}

func (s *Surface) RenderCart(fragment string) {
	s.setFragment(views.TabCart, fragment)
}

func (s *Surface) RenderOrders(fragment string) {
	s.setFragment(views.TabOrders, fragment)
}

func (s *Surface) ShowNotification(message string, kind notify.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "\n*** [%s] %s\n", kind, message)
}

func (s *Surface) HideNotification() {}

// ActiveFragment reports what the active section currently displays.
func (s *Surface) ActiveFragment() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fragments[s.active]
}

func (s *Surface) setFragment(tab views.Tab, fragment string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fragments[tab] = fragment
	if s.active == tab {
		s.redrawLocked()
	}
}

func (s *Surface) redrawLocked() {
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== Demo Store")
	if s.userEmail != "" {
		fmt.Fprintf(&b, " — %s", s.userEmail)
	}
	fmt.Fprintf(&b, " (cart: %d) ===\n", s.cartCount)

	for _, tab := range []views.Tab{views.TabProducts, views.TabCart, views.TabOrders} {
		marker := "  "
		if tab == s.active {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s  ", marker, tab)
	}
	b.WriteString("\n\n")
	b.WriteString(s.fragments[s.active])
	b.WriteString("\n")

	fmt.Fprint(s.out, b.String())
}
