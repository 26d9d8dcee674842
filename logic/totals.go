package logic

import "github.com/Salman534-web/WooCommerce-Enhancements/models"

// CartTotals 购物车合计：原价总额和商品折扣总额
// 优惠券折扣不在这里算，店面购物车会直接给聚合值
type CartTotals struct {
	RegularTotal         float64
	ProductDiscountTotal float64
}

// CalcCartTotals 逐行累加。只有促销中的行才计折扣，
// 原价低于促销价的脏数据按 0 折扣处理，保证折扣总额非负
func CalcCartTotals(items []models.CartLine) CartTotals {
	var t CartTotals
	for _, item := range items {
		qty := float64(item.Quantity)
		t.RegularTotal += item.RegularPrice * qty

		if !item.OnSale {
			continue
		}
		gap := item.RegularPrice - item.SalePrice
		if gap < 0 {
			gap = 0
		}
		t.ProductDiscountTotal += gap * qty
	}
	return t
}

// TotalSaved 省下的总金额 = 商品折扣 + 优惠券折扣
func (t CartTotals) TotalSaved(couponDiscount float64) float64 {
	return t.ProductDiscountTotal + couponDiscount
}
