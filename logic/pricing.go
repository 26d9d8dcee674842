package logic

import "github.com/Salman534-web/WooCommerce-Enhancements/models"

// DiscountAmount 单品折扣金额 = 原价 - 促销价，负差按 0 处理
func DiscountAmount(regular, sale float64) float64 {
	amount := regular - sale
	if amount < 0 {
		return 0
	}
	return amount
}

// LowestVariationPrice 取所有规格里的最低报价。
// 没有规格时返回 (0, false)
func LowestVariationPrice(variations []models.Variation) (float64, bool) {
	if len(variations) == 0 {
		return 0, false
	}
	lowest := variations[0].DisplayPrice
	for _, v := range variations[1:] {
		if v.DisplayPrice < lowest {
			lowest = v.DisplayPrice
		}
	}
	return lowest, true
}

// VariationSelector 最低价默认选中的扫描器。
// 原实现用静态变量跨回调记录最低价，并发请求下会互相污染；
// 这里改成显式累加器，每次渲染 new 一个，用完即弃
type VariationSelector struct {
	lowest   float64
	selected int // 当前选中项在已输出结果里的下标
	seen     bool
}

func NewVariationSelector() *VariationSelector {
	return &VariationSelector{selected: -1}
}

// Scan 按稳定顺序逐个喂入规格，返回带 is_selected 的视图。
// 扫描过程中发现更低价时把之前标过的选中位清掉，
// 最终整个结果里只有首个最低价规格被选中
func (s *VariationSelector) Scan(variations []models.Variation) []models.VariationView {
	views := make([]models.VariationView, 0, len(variations))
	for _, v := range variations {
		view := models.VariationView{
			ID:           v.ID,
			Label:        v.Label,
			DisplayPrice: v.DisplayPrice,
		}
		if !s.seen || v.DisplayPrice < s.lowest {
			s.lowest = v.DisplayPrice
			s.seen = true
			if s.selected >= 0 {
				views[s.selected].IsSelected = false
			}
			view.IsSelected = true
			s.selected = len(views)
		}
		views = append(views, view)
	}
	return views
}
