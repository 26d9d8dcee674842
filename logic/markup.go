package logic

import (
	"fmt"
	"strings"

	"github.com/Salman534-web/WooCommerce-Enhancements/models"
)

// 货币符号沿用原站点的塔卡
const currencySymbol = "৳"

// FormatAmount 金额格式化：千分位 + 两位小数，对齐 PHP number_format
func FormatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	intPart, decPart := s[:dot], s[dot:]

	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	out := b.String() + decPart
	if neg {
		out = "-" + out
	}
	return out
}

// Price 带货币符号的金额
func Price(v float64) string {
	return currencySymbol + FormatAmount(v)
}

// styleAttr 样式分支的唯一出口：
// 启用自定义样式走 CSS class，否则落回内联 style。
// 这个开关只影响展示属性，绝不影响任何计算结果
func styleAttr(useCustomStyles bool, class, inline string) string {
	if useCustomStyles {
		return `class="` + class + `"`
	}
	return `style="` + inline + `"`
}

// BreakdownRows 购物车合计区的省钱明细行。
// 原价行恒显示；商品折扣/优惠券折扣/合计省钱只在金额 > 0 时出现
func BreakdownRows(t CartTotals, couponDiscount float64, useCustomStyles bool) string {
	var b strings.Builder

	// 🔥 原价总额（划线）
	b.WriteString(`<tr><th ` + styleAttr(useCustomStyles, "regular-price-total-label", "color:#6c757d;") +
		`>Regular Price Total</th><td ` + styleAttr(useCustomStyles, "regular-price-total-value", "color:#6c757d;") +
		`><del>` + Price(t.RegularTotal) + `</del></td></tr>`)

	// 🟠 商品折扣
	if t.ProductDiscountTotal > 0 {
		b.WriteString(`<tr><th ` + styleAttr(useCustomStyles, "product-discount-label", "color:#dc3545;") +
			`>Product Discount</th><td ` + styleAttr(useCustomStyles, "product-discount-value", "color:#dc3545;") +
			`>-` + Price(t.ProductDiscountTotal) + `</td></tr>`)
	}

	// 🔵 优惠券折扣
	if couponDiscount > 0 {
		b.WriteString(`<tr><th ` + styleAttr(useCustomStyles, "coupon-discount-label", "color:#007bff;") +
			`>Coupon Discount</th><td ` + styleAttr(useCustomStyles, "coupon-discount-value", "color:#007bff;") +
			`>-` + Price(couponDiscount) + `</td></tr>`)
	}

	// ✅ 合计省钱
	if saved := t.TotalSaved(couponDiscount); saved > 0 {
		b.WriteString(`<tr><th ` + styleAttr(useCustomStyles, "you-saved-label", "color:#28a745;") +
			`>🎉 You Saved</th><td ` + styleAttr(useCustomStyles, "you-saved-value", "color:#28a745;") +
			`><strong>` + Price(saved) + `</strong></td></tr>`)
	}

	return b.String()
}

// CODNoticeHTML 结账页的货到付款提示条，按整车判定结果二选一
func CODNoticeHTML(available, useCustomStyles bool) string {
	if available {
		return `<div ` + styleAttr(useCustomStyles, "cod-notice-available",
			"background-color:#e6ffec;color:#14532d;padding:15px 20px;border-radius:8px;border-left:6px solid #22c55e;margin-bottom:20px;font-size:14px;line-height:1.5;") +
			`><strong>✅ Cash on Delivery is available in Dhaka city only.</strong><br>` +
			`For deliveries outside Dhaka, a partial advance payment is required to confirm your order.</div>`
	}
	return `<div ` + styleAttr(useCustomStyles, "cod-notice-unavailable",
		"background-color:#fff5f5;color:#7f1d1d;padding:15px 20px;border-radius:8px;border-left:6px solid #ef4444;margin-bottom:20px;font-size:14px;line-height:1.5;") +
		`><strong>❌ Cash on Delivery is unavailable for the selected item(s).</strong><br>` +
		`To proceed, please pay a minimum delivery fee in advance.<br>` +
		`For gift deliveries, full payment is required. The product will be delivered without an invoice for surprise gifting.</div>`
}

// 徽章公共内联样式
const badgeCommonStyle = "display:inline-flex;align-items:flex-start;gap:10px;border-radius:10px;padding:14px 18px;font-size:14px;line-height:1.4;margin-top:20px;"

// CODBadgeHTML 商品详情页的货到付款徽章
func CODBadgeHTML(available, useCustomStyles bool) string {
	if available {
		return `<div ` + styleAttr(useCustomStyles, "cod-badge-available",
			"background-color:#e6ffec;color:#1a7f37;border:1px solid #cce5cc;"+badgeCommonStyle) +
			`><span style="font-size:18px;">✅</span><div>` +
			`<strong>Cash on Delivery available in Dhaka city only.</strong><br>` +
			`For outside Dhaka, a partial advance payment is required to confirm your order.</div></div>`
	}
	return `<div ` + styleAttr(useCustomStyles, "cod-badge-unavailable",
		"background-color:#ffecec;color:#b30000;border:1px solid #f5c2c2;"+badgeCommonStyle) +
		`><span style="font-size:18px;">❌</span><div>` +
		`<strong>Cash on Delivery is unavailable for this item.</strong><br>` +
		`A minimum delivery fee must be paid in advance.<br>` +
		`For gift deliveries, full payment is required without a product invoice.</div></div>`
}

// CODShortcodeBadgeHTML cod_status_badge 占位标记版徽章，文案更短
func CODShortcodeBadgeHTML(available, useCustomStyles bool) string {
	if available {
		return `<div ` + styleAttr(useCustomStyles, "cod-badge-available",
			"background-color:#e6ffec;color:#1a7f37;border:1px solid #cce5cc;"+badgeCommonStyle) +
			`><span style="font-size:18px;">✅</span><div>` +
			`<strong>Cash on Delivery available in Dhaka..</strong><br>` +
			`For outside Dhaka, Delivery fee advance is required..</div></div>`
	}
	return `<div ` + styleAttr(useCustomStyles, "cod-badge-unavailable",
		"background-color:#ffecec;color:#b30000;border:1px solid #f5c2c2;"+badgeCommonStyle) +
		`><span style="font-size:18px;">❌</span><div>` +
		`<strong>Cash on Delivery not available for this item.</strong><br>` +
		`Please pay delivery fee in advance to confirm your order.</div></div>`
}

// UrgencyBoxHTML 结账催促框。data-timer-session 带上会话 ID，
// 页面拿它订阅 WebSocket 的每秒推送
func UrgencyBoxHTML(sessionID, initialDisplay string, useCustomStyles bool) string {
	return `<div id="urgency-box" data-timer-session="` + sessionID + `" ` +
		styleAttr(useCustomStyles, "urgency-box-style",
			"padding:10px;background:#fff3cd;color:#856404;border:1px solid #ffeeba;border-radius:6px;margin-bottom:15px;") +
		`>⚡ <strong>Hurry!</strong> This offer may expire soon. Complete your checkout now.<br>` +
		`🕒 <strong>Offer ends in <span id="timer">` + initialDisplay + `</span></strong></div>`
}

// UrgencyExpiredHTML 终态文案，推送端在过期那一拍下发
func UrgencyExpiredHTML() string {
	return `⏰ <strong>Offer expired</strong>. Please proceed to checkout or refresh the page to try again.`
}

// DiscountPriceHTML 单品折扣展示：划线原价 + 促销价 + 省了多少
func DiscountPriceHTML(regular, sale float64) string {
	return `<del>` + Price(regular) + `</del> <ins>` + Price(sale) + `</ins>` +
		` <span class="discount-amount">` + Price(DiscountAmount(regular, sale)) + ` off</span>`
}

// LowestPriceHTML 列表页只展示最低规格价
func LowestPriceHTML(lowest float64) string {
	return `<span class="woocommerce-Price-amount amount">` + Price(lowest) + `</span>`
}

// DefaultPriceHTML 宿主默认的价格渲染：促销中划线+现价，否则裸价格
func DefaultPriceHTML(p *models.Product) string {
	if p.OnSale {
		return `<del>` + Price(p.RegularPrice) + `</del> <ins>` + Price(p.SalePrice) + `</ins>`
	}
	return `<span class="woocommerce-Price-amount amount">` + Price(p.RegularPrice) + `</span>`
}
