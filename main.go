package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Salman534-web/WooCommerce-Enhancements/config"
	"github.com/Salman534-web/WooCommerce-Enhancements/database"
	"github.com/Salman534-web/WooCommerce-Enhancements/handlers"
	"github.com/Salman534-web/WooCommerce-Enhancements/middleware"
	"github.com/Salman534-web/WooCommerce-Enhancements/repositories"
	"github.com/Salman534-web/WooCommerce-Enhancements/services"
	version "github.com/Salman534-web/WooCommerce-Enhancements/utils/vesion"

	"github.com/gin-gonic/gin"
)

func main() {

	// 加载配置
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		panic(err)
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Database)
	if err != nil {
		panic(err)
	}

	// 初始化 Repositories
	settingsRepo := repositories.NewSettingsRepository(db)
	productRepo := repositories.NewProductRepository(db)

	// 补种默认设置：首次启动建出单例行，功能全关等后台打开
	if err := settingsRepo.EnsureDefaults(); err != nil {
		panic(err)
	}
	log.Println("🛠️ 设置记录已就绪")

	// 倒计时推送链路：Hub + 调度器
	hub := services.NewHub()
	go hub.Run()
	timers := services.NewCountdownService(context.Background(), hub)

	// 初始化 Handlers (注入 Repo)
	authHandler := handlers.NewAuthHandler(db, cfg.Auth)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)
	productHandler := handlers.NewProductHandler(productRepo)
	checkoutHandler := handlers.NewCheckoutHandler(settingsRepo, timers)
	displayHandler := handlers.NewDisplayHandler(settingsRepo, productRepo)

	// 注册路由
	r := gin.Default()
	r.GET("/version", func(c *gin.Context) {
		c.String(200, version.PrintVersion())
	})
	v1 := r.Group("/api/v1")
	{
		// 登录
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)

		// 后台管理接口，要带 Token
		admin := v1.Group("", middleware.AuthMiddleware(cfg.Auth.JWTSecret))
		{
			admin.GET("/settings", settingsHandler.GetSettings)
			admin.PUT("/settings", settingsHandler.UpdateSettings)
			admin.POST("/products", productHandler.CreateProduct)
			admin.POST("/products/sync", productHandler.SyncProductsHandler)
			admin.PUT("/products/:id", productHandler.UpdateProduct)
			admin.DELETE("/products/:id", productHandler.DeleteProduct)
		}

		// 商品档案（店面侧只读）
		v1.GET("/products", productHandler.GetProducts)

		// 结账页增强
		v1.POST("/checkout/breakdown", checkoutHandler.Breakdown)
		v1.POST("/checkout/cod-notice", checkoutHandler.CODNotice)
		v1.POST("/checkout/gateways", checkoutHandler.Gateways)
		v1.GET("/checkout/urgency", checkoutHandler.Urgency)
		v1.POST("/checkout/extras", checkoutHandler.Extras)

		// 商品展示片段
		v1.GET("/products/:id/price", displayHandler.PriceHTML)
		v1.GET("/products/:id/variations", displayHandler.Variations)
		v1.GET("/products/:id/cod-badge", displayHandler.CODBadge)
		v1.GET("/shortcode/cod-badge", displayHandler.ShortcodeBadge)

		// 动态样式表
		v1.GET("/styles.css", displayHandler.StylesCSS)

		// 倒计时推送
		v1.GET("/ws", func(c *gin.Context) {
			handlers.ServeWs(hub, c)
		})
	}

	_ = r.Run(fmt.Sprintf(":%d", cfg.Server.Port))
}
