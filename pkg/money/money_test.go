package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFromCents(t *testing.T) {
	if got := Format(FromCents(1998)); got != "19.98" {
		t.Fatalf("expected 19.98, got %s", got)
	}
	if got := Format(FromCents(5)); got != "0.05" {
		t.Fatalf("expected 0.05, got %s", got)
	}
	if got := Format(FromCents(0)); got != "0.00" {
		t.Fatalf("expected 0.00, got %s", got)
	}
}

func TestLineTotalIsExact(t *testing.T) {
	price := decimal.RequireFromString("9.99")
	if got := FormatUSD(LineTotal(price, 2)); got != "$19.98" {
		t.Fatalf("expected $19.98, got %s", got)
	}
	// 0.1+0.2 style drift must not appear.
	price = decimal.RequireFromString("0.10")
	if got := Format(LineTotal(price, 3)); got != "0.30" {
		t.Fatalf("expected 0.30, got %s", got)
	}
}

func TestCentsLineTotal(t *testing.T) {
	if got := FormatUSD(CentsLineTotal(2599, 2)); got != "$51.98" {
		t.Fatalf("expected $51.98, got %s", got)
	}
}
