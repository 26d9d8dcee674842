package handlers

import (
	"log"

	"github.com/Salman534-web/WooCommerce-Enhancements/models"
	"github.com/Salman534-web/WooCommerce-Enhancements/repositories"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type SettingsHandler struct {
	Repo repositories.SettingsRepository
}

func NewSettingsHandler(repo repositories.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{Repo: repo}
}

// GetSettings 后台读取当前设置
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.Repo.Get()
	if err != nil {
		c.JSON(500, gin.H{"error": "读取设置失败"})
		return
	}
	c.JSON(200, s.Raw)
}

// UpdateSettings 后台保存：整块覆盖，和原插件存整个 option 数组一致
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(400, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	s, err := h.Repo.Replace(datatypes.JSONMap(raw))
	if err != nil {
		c.JSON(500, gin.H{"error": "保存设置失败"})
		return
	}

	log.Println("✅ 设置已更新")
	c.JSON(200, s.Raw)
}

// loadSettings 渲染端统一的设置读取口：读不到就按默认值走，
// 渲染路径上绝不往外抛错
func loadSettings(repo repositories.SettingsRepository) *models.Settings {
	s, err := repo.Get()
	if err != nil {
		return &models.Settings{Raw: models.DefaultSettings()}
	}
	return s
}
