package logic

import (
	"strings"
	"testing"

	"github.com/Salman534-web/WooCommerce-Enhancements/models"
)

func TestDiscountAmount(t *testing.T) {
	if got := DiscountAmount(100.00, 75.00); got != 25.00 {
		t.Fatalf("DiscountAmount = %v, want 25", got)
	}
	if got := DiscountAmount(50, 80); got != 0 {
		t.Fatalf("negative gap should clamp to 0, got %v", got)
	}
}

func TestDiscountPriceHTML(t *testing.T) {
	html := DiscountPriceHTML(100.00, 75.00)
	if !strings.Contains(html, "25.00 off") {
		t.Fatalf("expected \"25.00 off\" in %q", html)
	}
	if !strings.Contains(html, "<del>") || !strings.Contains(html, "<ins>") {
		t.Fatalf("expected struck regular and sale price in %q", html)
	}
}

func variations(prices ...float64) []models.Variation {
	vs := make([]models.Variation, len(prices))
	for i, p := range prices {
		vs[i].DisplayPrice = p
		vs[i].Position = i
	}
	return vs
}

func TestLowestVariationPrice(t *testing.T) {
	// A:30, B:10, C:20
	lowest, ok := LowestVariationPrice(variations(30, 10, 20))
	if !ok || lowest != 10 {
		t.Fatalf("lowest = %v ok=%v, want 10 true", lowest, ok)
	}

	if _, ok := LowestVariationPrice(nil); ok {
		t.Fatal("no variations should report ok=false")
	}
}

func TestVariationSelectorMarksFirstMinimum(t *testing.T) {
	sel := NewVariationSelector()
	views := sel.Scan(variations(30, 10, 20))

	want := []bool{false, true, false}
	for i, v := range views {
		if v.IsSelected != want[i] {
			t.Fatalf("view %d selected=%v, want %v", i, v.IsSelected, want[i])
		}
	}
}

// 最低价并列时选中首个出现的那个
func TestVariationSelectorTieKeepsFirst(t *testing.T) {
	sel := NewVariationSelector()
	views := sel.Scan(variations(10, 20, 10))

	if !views[0].IsSelected || views[2].IsSelected {
		t.Fatalf("first occurrence of minimum should win: %+v", views)
	}
}

// 累加器随请求走，两次渲染之间不能串状态
func TestVariationSelectorDoesNotLeakBetweenRenders(t *testing.T) {
	first := NewVariationSelector().Scan(variations(5, 8))
	if !first[0].IsSelected {
		t.Fatalf("first render broken: %+v", first)
	}

	// 新的渲染从头来，哪怕价格都比上一轮高
	second := NewVariationSelector().Scan(variations(100, 200))
	if !second[0].IsSelected || second[1].IsSelected {
		t.Fatalf("selector state leaked across renders: %+v", second)
	}
}
