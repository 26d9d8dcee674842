package database

import (
	"fmt"

	"github.com/Salman534-web/WooCommerce-Enhancements/config"
	"github.com/Salman534-web/WooCommerce-Enhancements/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Dbname, cfg.Port, cfg.SslMode)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: " + err.Error())
	}

	// 先确保扩展开启
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	// 自动迁移表结构
	err = db.AutoMigrate(
		&models.Owner{},
		&models.Settings{},
		&models.Product{},
		&models.Variation{},
	)
	if err != nil {
		return nil, fmt.Errorf("数据库迁移失败: " + err.Error())
	}
	fmt.Println("✅ 数据库初始化完成，表结构已就绪")
	return db, nil
}
