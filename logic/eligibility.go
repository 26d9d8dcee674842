package logic

import (
	"strings"

	"github.com/Salman534-web/WooCommerce-Enhancements/models"
)

// ParseDisallowedClasses 把逗号分隔的类目串拆成清单：
// 逐项 trim，空项丢弃。" a, b ,,c " -> [a b c]，空串 -> []
func ParseDisallowedClasses(raw string) []string {
	parts := strings.Split(raw, ",")
	classes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		classes = append(classes, p)
	}
	return classes
}

// ClassAllowed COD 判定核心：类目不在禁用清单里才允许。
// 精确匹配、大小写敏感，三个消费方（结账提示、网关过滤、商品徽章）
// 都必须走这一个函数，保证同样输入结论一致
func ClassAllowed(shippingClass string, disallowed []string) bool {
	for _, d := range disallowed {
		if shippingClass == d {
			return false
		}
	}
	return true
}

// CartAllowed 购物车级判定：任何一行命中禁用类目就整车不允许，
// 命中即短路
func CartAllowed(items []models.CartLine, disallowed []string) bool {
	for _, item := range items {
		if !ClassAllowed(item.ShippingClass, disallowed) {
			return false
		}
	}
	return true
}
