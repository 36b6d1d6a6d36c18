package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/angelmondragon/storefront/internal/notify"
	"github.com/angelmondragon/storefront/internal/views"
)

func TestSurfaceRedrawsActiveSectionOnly(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSurface(buf)

	s.RenderProducts("[General] Widget")
	s.RenderCart("Your cart is empty")

	if got := s.ActiveFragment(); got != "[General] Widget" {
		t.Fatalf("products should be active initially, got %q", got)
	}

	buf.Reset()
	s.ShowSection(views.TabCart)
	out := buf.String()
	if !strings.Contains(out, "Your cart is empty") {
		t.Fatalf("cart section not drawn: %q", out)
	}
	if strings.Contains(out, "Widget") {
		t.Fatalf("inactive section leaked into the draw: %q", out)
	}
	if !strings.Contains(out, "> cart") {
		t.Fatalf("active tab marker missing: %q", out)
	}
}

func TestSurfaceHeaderShowsUserAndBadge(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSurface(buf)
	s.SetUserEmail("demo@example.com")
	s.SetCartCount(2)

	s.ShowSection(views.TabProducts)
	out := buf.String()
	if !strings.Contains(out, "demo@example.com") {
		t.Fatalf("user email missing: %q", out)
	}
	if !strings.Contains(out, "(cart: 2)") {
		t.Fatalf("cart badge missing: %q", out)
	}
}

func TestSurfaceNotifications(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSurface(buf)

	s.ShowNotification("Added to cart!", notify.KindSuccess)
	if !strings.Contains(buf.String(), "[success] Added to cart!") {
		t.Fatalf("notification not written: %q", buf.String())
	}
}
