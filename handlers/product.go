package handlers

import (
	"fmt"
	"net/http"

	"github.com/Salman534-web/WooCommerce-Enhancements/models"
	"github.com/Salman534-web/WooCommerce-Enhancements/repositories"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	Repo repositories.ProductRepository
}

// NewProductHandler 构造函数，强制注入 Repository
func NewProductHandler(repo repositories.ProductRepository) *ProductHandler {
	return &ProductHandler{Repo: repo}
}

// CreateProduct 创建商品档案
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Repo.Create(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建失败"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProducts 获取全部商品档案
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.Repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询失败"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// SyncProductsHandler 店面侧全量推送商品档案
func (h *ProductHandler) SyncProductsHandler(c *gin.Context) {
	var items []models.ProductDTO
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(400, gin.H{"error": "无效的数据格式"})
		return
	}

	if err := h.Repo.SyncProducts(items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "同步失败: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"status": "ok", "message": fmt.Sprintf("同步成功，共处理 %d 条数据", len(items))})
}

// UpdateProduct 全字段更新商品档案
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的商品 ID"})
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product.ID = id

	if err := h.Repo.Update(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新失败"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct 删除商品档案
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除失败"})
		return
	}
	c.JSON(200, gin.H{"status": "ok"})
}
