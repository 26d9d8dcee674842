package repositories

import (
	"github.com/Salman534-web/WooCommerce-Enhancements/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository 设置仓库：整张表只有一行，渲染侧只读
type SettingsRepository interface {
	Get() (*models.Settings, error)
	Replace(raw datatypes.JSONMap) (*models.Settings, error)
	EnsureDefaults() error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get 读取单例行
func (r *settingsRepository) Get() (*models.Settings, error) {
	var s models.Settings
	if err := r.db.First(&s, "id = ?", models.SettingsRecordID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Replace 整块覆盖：和 WP update_option 一样存整个数组，不做按键合并
func (r *settingsRepository) Replace(raw datatypes.JSONMap) (*models.Settings, error) {
	s := models.Settings{ID: models.SettingsRecordID, Raw: raw}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"raw", "updated_at"}),
	}).Create(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// EnsureDefaults 启动时补种默认行，已存在就什么都不动
func (r *settingsRepository) EnsureDefaults() error {
	s := models.Settings{ID: models.SettingsRecordID, Raw: models.DefaultSettings()}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s).Error
}
