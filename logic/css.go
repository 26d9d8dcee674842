package logic

import (
	"regexp"
	"strings"

	"github.com/Salman534-web/WooCommerce-Enhancements/models"
)

// cssVar 一条样式变量：设置 key + 硬编码默认值
type cssVar struct {
	name string // CSS 变量名
	key  string // 设置 key
	def  string // 默认颜色
}

// 颜色变量清单，顺序和默认值与原插件逐条对齐
var cssVars = []cssVar{
	{"--my-wc-enh-cod-badge-available-bg", models.OptCODBadgeAvailableBg, "#e8f5e9"},
	{"--my-wc-enh-cod-badge-available-color", models.OptCODBadgeAvailableColor, "#507d32"},
	{"--my-wc-enh-cod-badge-available-border", models.OptCODBadgeAvailableBorder, "#507d32"},
	{"--my-wc-enh-cod-badge-unavailable-bg", models.OptCODBadgeUnavailableBg, "#fff5f5"},
	{"--my-wc-enh-cod-badge-unavailable-color", models.OptCODBadgeUnavailableColor, "#7f1d1d"},
	{"--my-wc-enh-cod-badge-unavailable-border", models.OptCODBadgeUnavailableBorder, "#ef4444"},
	{"--my-wc-enh-urgency-box-bg", models.OptUrgencyBoxBg, "#FFFDE7"},
	{"--my-wc-enh-urgency-box-color", models.OptUrgencyBoxColor, "#FF8F00"},
	{"--my-wc-enh-urgency-box-border", models.OptUrgencyBoxBorder, "#FFD54F"},
	{"--my-wc-enh-discount-amount-color", models.OptDiscountAmountColor, "#D32F2F"},
	{"--my-wc-enh-regular-price-color", models.OptRegularPriceColor, "#757575"},
	{"--my-wc-enh-product-discount-color", models.OptProductDiscountColor, "#D32F2F"},
	{"--my-wc-enh-coupon-discount-color", models.OptCouponDiscountColor, "#1976D2"},
	{"--my-wc-enh-you-saved-color", models.OptYouSavedColor, "#388E3C"},
}

// GenerateCustomCSS 把设置映射成 :root 样式变量块。
// 纯映射：存了值用值，没存用默认，没有别的分支
func GenerateCustomCSS(s *models.Settings) string {
	var b strings.Builder
	b.WriteString(":root {")
	for _, v := range cssVars {
		val := s.Str(v.key)
		if val == "" {
			val = v.def
		}
		b.WriteString(v.name + ": " + val + ";")
	}
	b.WriteString("}")
	return b.String()
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags 剥掉自定义 CSS 里的 HTML 标签再输出，
// 对齐 wp_strip_all_tags 的处理
func StripTags(css string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(css, ""))
}
