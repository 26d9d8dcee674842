package logic

import (
	"strings"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:        "0.00",
		25:       "25.00",
		1234.5:   "1,234.50",
		9876543:  "9,876,543.00",
		-1234.56: "-1,234.56",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestBreakdownRows(t *testing.T) {
	t.Run("regular row always renders", func(t *testing.T) {
		html := BreakdownRows(CartTotals{RegularTotal: 330}, 0, false)
		if !strings.Contains(html, "Regular Price Total") {
			t.Fatalf("missing regular row: %q", html)
		}
		if strings.Contains(html, "Product Discount") || strings.Contains(html, "You Saved") {
			t.Fatalf("zero amounts must suppress their rows: %q", html)
		}
	})

	t.Run("all rows when everything positive", func(t *testing.T) {
		totals := CartTotals{RegularTotal: 330, ProductDiscountTotal: 50}
		html := BreakdownRows(totals, 20, false)
		for _, label := range []string{"Regular Price Total", "Product Discount", "Coupon Discount", "You Saved"} {
			if !strings.Contains(html, label) {
				t.Fatalf("missing %q row: %q", label, html)
			}
		}
		if !strings.Contains(html, "৳70.00") {
			t.Fatalf("total saved should be 70.00: %q", html)
		}
	})

	t.Run("style switch only changes attributes", func(t *testing.T) {
		totals := CartTotals{RegularTotal: 330, ProductDiscountTotal: 50}
		classed := BreakdownRows(totals, 20, true)
		inlined := BreakdownRows(totals, 20, false)

		if !strings.Contains(classed, `class="regular-price-total-label"`) {
			t.Fatalf("custom mode should emit classes: %q", classed)
		}
		if !strings.Contains(inlined, `style="color:#6c757d;"`) {
			t.Fatalf("plain mode should emit inline styles: %q", inlined)
		}
		// 两种模式下的金额一字不差
		for _, amount := range []string{"৳330.00", "৳50.00", "৳20.00", "৳70.00"} {
			if !strings.Contains(classed, amount) || !strings.Contains(inlined, amount) {
				t.Fatalf("amount %q must not depend on style mode", amount)
			}
		}
	})
}

func TestCODFragments(t *testing.T) {
	if !strings.Contains(CODNoticeHTML(true, false), "✅") {
		t.Fatal("available notice should carry the checkmark")
	}
	if !strings.Contains(CODNoticeHTML(false, false), "❌") {
		t.Fatal("unavailable notice should carry the cross")
	}
	if !strings.Contains(CODBadgeHTML(true, true), `class="cod-badge-available"`) {
		t.Fatal("custom styles should use the badge class")
	}
	if !strings.Contains(CODShortcodeBadgeHTML(false, false), "Please pay delivery fee in advance") {
		t.Fatal("shortcode badge keeps its shorter wording")
	}
}

func TestUrgencyBoxHTML(t *testing.T) {
	html := UrgencyBoxHTML("abc-123", "15:00", false)
	if !strings.Contains(html, `data-timer-session="abc-123"`) {
		t.Fatalf("session id missing: %q", html)
	}
	if !strings.Contains(html, `<span id="timer">15:00</span>`) {
		t.Fatalf("initial display missing: %q", html)
	}
}
