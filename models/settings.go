package models

import (
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

// 设置项 key，与原插件 option 名保持一一对应
const (
	OptEnableDiscountDisplay      = "enable_discount_display"
	OptEnableLowestPriceVariation = "enable_lowest_price_variation"
	OptEnableLowestPriceCategory  = "enable_lowest_price_category"
	OptEnableCODManagement        = "enable_cod_management"
	OptEnableDiscountBreakdown    = "enable_discount_breakdown"
	OptEnableCheckoutUrgency      = "enable_checkout_urgency"
	OptEnableCustomStyles         = "enable_custom_styles"
	OptUrgencyTimerDuration       = "urgency_timer_duration"
	OptCODDisallowedClasses       = "cod_disallowed_shipping_classes"
	OptCustomCSSCode              = "custom_css_code"

	OptCODBadgeAvailableBg       = "cod_badge_available_bg"
	OptCODBadgeAvailableColor    = "cod_badge_available_color"
	OptCODBadgeAvailableBorder   = "cod_badge_available_border"
	OptCODBadgeUnavailableBg     = "cod_badge_unavailable_bg"
	OptCODBadgeUnavailableColor  = "cod_badge_unavailable_color"
	OptCODBadgeUnavailableBorder = "cod_badge_unavailable_border"
	OptUrgencyBoxBg              = "urgency_box_bg"
	OptUrgencyBoxColor           = "urgency_box_color"
	OptUrgencyBoxBorder          = "urgency_box_border"
	OptDiscountAmountColor       = "discount_amount_color"
	OptRegularPriceColor         = "regular_price_color"
	OptProductDiscountColor      = "product_discount_color"
	OptCouponDiscountColor       = "coupon_discount_color"
	OptYouSavedColor             = "you_saved_color"
)

// 倒计时兜底时长（分钟）
const DefaultTimerMinutes = 15

// COD 默认禁用的运输类目（设置为空时的兜底清单）
const DefaultDisallowedClasses = "bouquets-balloon,cake,cheese-frozen,craft-items,basket-gift,baking-items-high-weight"

// SettingsRecordID 固定主键：整张表只允许这一行
const SettingsRecordID = 1

// Settings 设置单例模型：所有开关和颜色存在一个 JSON 块里，
// 和原插件单条 option 记录的存法保持一致
type Settings struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Raw       datatypes.JSONMap `gorm:"type:jsonb;not null" json:"raw"`
	UpdatedAt int64             `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Settings) TableName() string {
	return "enhancement_settings"
}

// Str 读取字符串值，缺失时返回空串
func (s *Settings) Str(key string) string {
	if s == nil || s.Raw == nil {
		return ""
	}
	switch v := s.Raw[key].(type) {
	case string:
		return v
	case float64:
		// JSON 数字统一转回字符串，前端偶尔会把 "15" 传成 15
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}

// Flag 布尔开关：只有显式 "1" 才算开启
func (s *Settings) Flag(key string) bool {
	return s.Str(key) == "1"
}

// TimerMinutes 倒计时时长：缺失或非正数一律回落到默认 15 分钟
func (s *Settings) TimerMinutes() int {
	n, err := strconv.Atoi(strings.TrimSpace(s.Str(OptUrgencyTimerDuration)))
	if err != nil || n <= 0 {
		return DefaultTimerMinutes
	}
	return n
}

// DisallowedClassesRaw 返回逗号分隔的类目串，空时用默认清单
func (s *Settings) DisallowedClassesRaw() string {
	if v := s.Str(OptCODDisallowedClasses); v != "" {
		return v
	}
	return DefaultDisallowedClasses
}

// DefaultSettings 初始设置：功能全关，颜色留空走硬编码默认值
func DefaultSettings() datatypes.JSONMap {
	return datatypes.JSONMap{
		OptEnableDiscountDisplay:      "0",
		OptEnableLowestPriceVariation: "0",
		OptEnableLowestPriceCategory:  "0",
		OptEnableCODManagement:        "0",
		OptEnableDiscountBreakdown:    "0",
		OptEnableCheckoutUrgency:      "0",
		OptEnableCustomStyles:         "0",
		OptUrgencyTimerDuration:       strconv.Itoa(DefaultTimerMinutes),
		OptCODDisallowedClasses:       DefaultDisallowedClasses,
		OptCustomCSSCode:              "",
	}
}
