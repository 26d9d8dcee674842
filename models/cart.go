package models

// CartLine 购物车行项目快照：店面侧按行推送，本服务只读
type CartLine struct {
	ProductName   string  `json:"product_name"`
	RegularPrice  float64 `json:"regular_price"`
	SalePrice     float64 `json:"sale_price"`
	OnSale        bool    `json:"on_sale"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	ShippingClass string  `json:"shipping_class"`
}

// CartReq 购物车快照请求体
type CartReq struct {
	Items []CartLine `json:"items"`
	// 优惠券折扣由店面购物车算好直接带过来，这边不重复计算
	CouponDiscount float64 `json:"coupon_discount"`
}

// GatewaysReq 支付方式过滤请求：店面把当前可用的网关 ID 列表一起传来
type GatewaysReq struct {
	Cart     CartReq  `json:"cart"`
	Gateways []string `json:"gateways" binding:"required"`
}
