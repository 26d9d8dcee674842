package logic

import (
	"testing"

	"github.com/Salman534-web/WooCommerce-Enhancements/models"
)

func TestCalcCartTotals(t *testing.T) {
	items := []models.CartLine{
		{RegularPrice: 100, SalePrice: 75, OnSale: true, Quantity: 2},  // 折扣 50
		{RegularPrice: 40, SalePrice: 0, OnSale: false, Quantity: 3},   // 不促销，不计折扣
		{RegularPrice: 10, SalePrice: 10, OnSale: true, Quantity: 1},   // 促销但没差价
	}

	got := CalcCartTotals(items)

	if got.RegularTotal != 100*2+40*3+10 {
		t.Fatalf("RegularTotal = %v, want %v", got.RegularTotal, 330.0)
	}
	if got.ProductDiscountTotal != 50 {
		t.Fatalf("ProductDiscountTotal = %v, want 50", got.ProductDiscountTotal)
	}
	if got.TotalSaved(20) != 70 {
		t.Fatalf("TotalSaved(20) = %v, want 70", got.TotalSaved(20))
	}
}

func TestCalcCartTotalsEmptyCart(t *testing.T) {
	got := CalcCartTotals(nil)
	if got.RegularTotal != 0 || got.ProductDiscountTotal != 0 {
		t.Fatalf("empty cart should produce zero totals, got %+v", got)
	}
}

// 脏数据：促销价反而高于原价，折扣必须钳到 0 而不是出现负数
func TestCalcCartTotalsNeverNegativeDiscount(t *testing.T) {
	items := []models.CartLine{
		{RegularPrice: 50, SalePrice: 80, OnSale: true, Quantity: 4},
	}
	got := CalcCartTotals(items)
	if got.ProductDiscountTotal != 0 {
		t.Fatalf("ProductDiscountTotal = %v, want 0", got.ProductDiscountTotal)
	}
}
