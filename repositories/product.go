package repositories

import (
	"github.com/Salman534-web/WooCommerce-Enhancements/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(p *models.Product) error
	FindByID(id string) (*models.Product, error)
	FindAll() ([]models.Product, error)
	Update(p *models.Product) error
	Delete(id string) error
	SyncProducts(items []models.ProductDTO) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create 实现接口：创建商品
func (r *productRepository) Create(p *models.Product) error {
	return r.db.Create(p).Error
}

// FindByID 实现接口：按 ID 查询，规格按 position 排好序带出来
// 扫描顺序必须稳定，最低价选中逻辑依赖这个顺序
func (r *productRepository) FindByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Variations", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, created_at ASC")
	}).First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAll 实现接口：全部商品
func (r *productRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Variations").Find(&products).Error
	return products, err
}

// Update 实现接口：全字段更新
func (r *productRepository) Update(p *models.Product) error {
	return r.db.Save(p).Error
}

// Delete 实现接口：删除
func (r *productRepository) Delete(id string) error {
	return r.db.Delete(&models.Product{}, "id = ?", id).Error
}

// SyncProducts 店面全量同步：只认 ID 做 Upsert，连同规格一起换掉
func (r *productRepository) SyncProducts(items []models.ProductDTO) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			p := models.Product{
				Base:          models.Base{ID: item.ID},
				Name:          item.Name,
				ProductType:   item.ProductType,
				RegularPrice:  item.RegularPrice,
				SalePrice:     item.SalePrice,
				OnSale:        item.OnSale,
				ShippingClass: item.ShippingClass,
			}

			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"name", "product_type", "regular_price", "sale_price",
					"on_sale", "shipping_class", "updated_at",
				}),
			}).Create(&p).Error
			if err != nil {
				return err
			}

			// 规格直接删旧插新，店面每次都是全量推
			if err := tx.Where("product_id = ?", p.ID).Delete(&models.Variation{}).Error; err != nil {
				return err
			}
			for _, v := range item.Variations {
				variation := models.Variation{
					Base:         models.Base{ID: v.ID},
					ProductID:    p.ID,
					Label:        v.Label,
					DisplayPrice: v.DisplayPrice,
					Position:     v.Position,
				}
				if err := tx.Create(&variation).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
