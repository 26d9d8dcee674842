package handlers

import (
	"net/http"

	"github.com/Salman534-web/WooCommerce-Enhancements/logic"
	"github.com/Salman534-web/WooCommerce-Enhancements/models"
	"github.com/Salman534-web/WooCommerce-Enhancements/repositories"
	"github.com/Salman534-web/WooCommerce-Enhancements/services"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

// CheckoutHandler 结账页的几块增强：省钱明细、COD 提示、网关过滤、催促倒计时
type CheckoutHandler struct {
	Settings repositories.SettingsRepository
	Timers   *services.CountdownService
}

func NewCheckoutHandler(settings repositories.SettingsRepository, timers *services.CountdownService) *CheckoutHandler {
	return &CheckoutHandler{Settings: settings, Timers: timers}
}

// Breakdown 省钱明细行。开关没开就回空片段，绝不报错
func (h *CheckoutHandler) Breakdown(c *gin.Context) {
	var req models.CartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的购物车数据"})
		return
	}

	s := loadSettings(h.Settings)
	if !s.Flag(models.OptEnableDiscountBreakdown) {
		c.Data(http.StatusOK, htmlContentType, nil)
		return
	}

	totals := logic.CalcCartTotals(req.Items)
	html := logic.BreakdownRows(totals, req.CouponDiscount, s.Flag(models.OptEnableCustomStyles))
	c.Data(http.StatusOK, htmlContentType, []byte(html))
}

// CODNotice 结账页 COD 提示条，整车判定
func (h *CheckoutHandler) CODNotice(c *gin.Context) {
	var req models.CartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的购物车数据"})
		return
	}

	s := loadSettings(h.Settings)
	if !s.Flag(models.OptEnableCODManagement) {
		c.Data(http.StatusOK, htmlContentType, nil)
		return
	}

	disallowed := logic.ParseDisallowedClasses(s.DisallowedClassesRaw())
	available := logic.CartAllowed(req.Items, disallowed)
	html := logic.CODNoticeHTML(available, s.Flag(models.OptEnableCustomStyles))
	c.Data(http.StatusOK, htmlContentType, []byte(html))
}

// Gateways 支付方式过滤：整车命中禁用类目就把 cod 摘掉，
// 其余网关原样奉还（网关注册表归店面管）
func (h *CheckoutHandler) Gateways(c *gin.Context) {
	var req models.GatewaysReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	s := loadSettings(h.Settings)
	gateways := req.Gateways

	if s.Flag(models.OptEnableCODManagement) {
		disallowed := logic.ParseDisallowedClasses(s.DisallowedClassesRaw())
		if !logic.CartAllowed(req.Cart.Items, disallowed) {
			filtered := make([]string, 0, len(gateways))
			for _, g := range gateways {
				if g == "cod" {
					continue
				}
				filtered = append(filtered, g)
			}
			gateways = filtered
		}
	}

	c.JSON(http.StatusOK, gin.H{"gateways": gateways})
}

// Urgency 催促框：渲染片段并拉起一个倒计时会话，
// 页面拿 data-timer-session 去订阅每秒推送
func (h *CheckoutHandler) Urgency(c *gin.Context) {
	s := loadSettings(h.Settings)
	if !s.Flag(models.OptEnableCheckoutUrgency) {
		c.Data(http.StatusOK, htmlContentType, nil)
		return
	}

	sessionID, firstDisplay := h.Timers.StartSession(s.TimerMinutes())
	html := logic.UrgencyBoxHTML(sessionID, firstDisplay, s.Flag(models.OptEnableCustomStyles))
	c.Data(http.StatusOK, htmlContentType, []byte(html))
}

// Extras 一次请求拿齐结账页增强：按固定顺序逐个调用启用的功能，
// 取代原插件挂在宿主钩子上的隐式注册
func (h *CheckoutHandler) Extras(c *gin.Context) {
	var req models.CartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的购物车数据"})
		return
	}

	s := loadSettings(h.Settings)
	useCustomStyles := s.Flag(models.OptEnableCustomStyles)

	resp := gin.H{
		"breakdown_html":   "",
		"cod_notice_html":  "",
		"urgency_html":     "",
		"timer_session_id": "",
	}

	// 1. 省钱明细
	if s.Flag(models.OptEnableDiscountBreakdown) {
		totals := logic.CalcCartTotals(req.Items)
		resp["breakdown_html"] = logic.BreakdownRows(totals, req.CouponDiscount, useCustomStyles)
	}

	// 2. COD 提示
	if s.Flag(models.OptEnableCODManagement) {
		disallowed := logic.ParseDisallowedClasses(s.DisallowedClassesRaw())
		available := logic.CartAllowed(req.Items, disallowed)
		resp["cod_notice_html"] = logic.CODNoticeHTML(available, useCustomStyles)
	}

	// 3. 催促倒计时
	if s.Flag(models.OptEnableCheckoutUrgency) {
		sessionID, firstDisplay := h.Timers.StartSession(s.TimerMinutes())
		resp["urgency_html"] = logic.UrgencyBoxHTML(sessionID, firstDisplay, useCustomStyles)
		resp["timer_session_id"] = sessionID
	}

	c.JSON(http.StatusOK, resp)
}
