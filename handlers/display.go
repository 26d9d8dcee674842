package handlers

import (
	"net/http"

	"github.com/Salman534-web/WooCommerce-Enhancements/logic"
	"github.com/Salman534-web/WooCommerce-Enhancements/models"
	"github.com/Salman534-web/WooCommerce-Enhancements/repositories"

	"github.com/gin-gonic/gin"
)

// DisplayHandler 商品侧的展示片段：价格、规格选中、COD 徽章、样式表
type DisplayHandler struct {
	Settings repositories.SettingsRepository
	Products repositories.ProductRepository
}

func NewDisplayHandler(settings repositories.SettingsRepository, products repositories.ProductRepository) *DisplayHandler {
	return &DisplayHandler{Settings: settings, Products: products}
}

// PriceHTML 价格展示片段。context=product|category 对应详情页和列表页。
// 商品不存在按"无上下文"处理：回空片段而不是报错
func (h *DisplayHandler) PriceHTML(c *gin.Context) {
	p, err := h.Products.FindByID(c.Param("id"))
	if err != nil {
		c.Data(http.StatusOK, htmlContentType, nil)
		return
	}

	s := loadSettings(h.Settings)
	ctx := c.DefaultQuery("context", "product")

	var html string
	switch {
	// 列表页：多规格商品只露最低价
	case ctx == "category" && s.Flag(models.OptEnableLowestPriceCategory) && p.ProductType == models.TypeVariable:
		if lowest, ok := logic.LowestVariationPrice(p.Variations); ok {
			html = logic.LowestPriceHTML(lowest)
		} else {
			html = logic.DefaultPriceHTML(p)
		}

	// 详情页：促销中的单品带上省了多少
	case ctx == "product" && s.Flag(models.OptEnableDiscountDisplay) && p.OnSale:
		html = logic.DiscountPriceHTML(p.RegularPrice, p.SalePrice)

	// 详情页：多规格商品默认亮出最低规格价
	case ctx == "product" && s.Flag(models.OptEnableLowestPriceVariation) && p.ProductType == models.TypeVariable:
		if lowest, ok := logic.LowestVariationPrice(p.Variations); ok {
			html = logic.LowestPriceHTML(lowest)
		} else {
			html = logic.DefaultPriceHTML(p)
		}

	default:
		html = logic.DefaultPriceHTML(p)
	}

	c.Data(http.StatusOK, htmlContentType, []byte(html))
}

// Variations 规格列表，带最低价默认选中标记。
// 选中状态用请求内的扫描器算，请求之间互不沾染
func (h *DisplayHandler) Variations(c *gin.Context) {
	p, err := h.Products.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "商品不存在"})
		return
	}

	s := loadSettings(h.Settings)

	var views []models.VariationView
	if s.Flag(models.OptEnableLowestPriceVariation) {
		views = logic.NewVariationSelector().Scan(p.Variations)
	} else {
		// 功能关着就原样吐出，不动选中位
		views = make([]models.VariationView, 0, len(p.Variations))
		for _, v := range p.Variations {
			views = append(views, models.VariationView{
				ID:           v.ID,
				Label:        v.Label,
				DisplayPrice: v.DisplayPrice,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{"variations": views})
}

// CODBadge 商品详情页的货到付款徽章
func (h *DisplayHandler) CODBadge(c *gin.Context) {
	h.renderBadge(c, c.Param("id"), logic.CODBadgeHTML)
}

// ShortcodeBadge cod_status_badge 占位标记：唯一面向终端用户的调用面。
// 功能关闭或没有商品上下文时回空串
func (h *DisplayHandler) ShortcodeBadge(c *gin.Context) {
	h.renderBadge(c, c.Query("product_id"), logic.CODShortcodeBadgeHTML)
}

// renderBadge 两种徽章共用的渲染骨架，判定逻辑完全一致，只差文案
func (h *DisplayHandler) renderBadge(c *gin.Context, productID string, fragment func(bool, bool) string) {
	s := loadSettings(h.Settings)
	if !s.Flag(models.OptEnableCODManagement) || productID == "" {
		c.Data(http.StatusOK, htmlContentType, nil)
		return
	}

	p, err := h.Products.FindByID(productID)
	if err != nil {
		c.Data(http.StatusOK, htmlContentType, nil)
		return
	}

	disallowed := logic.ParseDisallowedClasses(s.DisallowedClassesRaw())
	available := logic.ClassAllowed(p.ShippingClass, disallowed)
	c.Data(http.StatusOK, htmlContentType, []byte(fragment(available, s.Flag(models.OptEnableCustomStyles))))
}

// StylesCSS 动态样式表：自定义样式没开就是空的
func (h *DisplayHandler) StylesCSS(c *gin.Context) {
	s := loadSettings(h.Settings)

	const cssContentType = "text/css; charset=utf-8"
	if !s.Flag(models.OptEnableCustomStyles) {
		c.Data(http.StatusOK, cssContentType, nil)
		return
	}

	css := logic.GenerateCustomCSS(s)
	if code := s.Str(models.OptCustomCSSCode); code != "" {
		css += "\n" + logic.StripTags(code)
	}
	c.Data(http.StatusOK, cssContentType, []byte(css))
}
