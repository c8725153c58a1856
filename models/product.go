package models

import (
	"context"
	"errors"
	"strconv"
	"time"

	"bitbucket.org/mmdatafocus/pos_backend/config"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultMinStock is the low-stock threshold used when a product does not
// carry an explicit one.
const DefaultMinStock = 10

type Product struct {
	ID             int             `gorm:"primary_key" json:"id"`
	Name           string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Color          string          `gorm:"size:100;not null" json:"color" binding:"required"`
	RegularPrice   decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"regular_price"`
	SalePrice      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"sale_price"`
	WholesalePrice decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"wholesale_price"`
	BrandId        int             `gorm:"index;not null" json:"brand_id"`
	Brand          *Brand          `json:"brand,omitempty"`
	CategoryId     int             `gorm:"index;not null" json:"category_id"`
	Category       *Category       `json:"category,omitempty"`
	Stock          int             `gorm:"not null;default:0" json:"stock"`
	MinStock       int             `gorm:"not null;default:0" json:"min_stock"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProduct struct {
	Name           string          `json:"name" binding:"required"`
	Color          string          `json:"color" binding:"required"`
	RegularPrice   decimal.Decimal `json:"regularPrice" binding:"required"`
	SalePrice      decimal.Decimal `json:"salePrice" binding:"required"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice" binding:"required"`
	BrandId        int             `json:"brand" binding:"required"`
	CategoryId     int             `json:"category" binding:"required"`
	Stock          int             `json:"stock" binding:"min=0"`
	MinStock       int             `json:"minStock" binding:"min=0"`
}

// MinStockThreshold is MinStock with the default applied.
func (p *Product) MinStockThreshold() int {
	if p.MinStock > 0 {
		return p.MinStock
	}
	return DefaultMinStock
}

// IsLowStock reports whether the product belongs on the low-stock list.
func (p *Product) IsLowStock() bool {
	return p.Stock < p.MinStockThreshold()
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {
	db := config.GetDB()

	if _, err := GetBrand(ctx, input.BrandId); err != nil {
		return nil, err
	}
	if _, err := GetCategory(ctx, input.CategoryId); err != nil {
		return nil, err
	}

	product := Product{
		Name:           input.Name,
		Color:          input.Color,
		RegularPrice:   input.RegularPrice,
		SalePrice:      input.SalePrice,
		WholesalePrice: input.WholesalePrice,
		BrandId:        input.BrandId,
		CategoryId:     input.CategoryId,
		Stock:          input.Stock,
		MinStock:       input.MinStock,
	}

	tx := db.Begin()
	id, err := NextSequence(tx.WithContext(ctx), "Product")
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	product.ID = id

	if err := tx.WithContext(ctx).Create(&product).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return GetProduct(ctx, product.ID)
}

func GetProduct(ctx context.Context, id int) (*Product, error) {
	db := config.GetDB()

	var product Product
	err := db.WithContext(ctx).Preload("Brand").Preload("Category").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

type ProductListFilter struct {
	Search     string
	BrandId    int
	CategoryId int
	Page       int
	Limit      int
}

// PaginateProducts lists products newest-first. Search matches the name
// (substring) or, when numeric, the exact id.
func PaginateProducts(ctx context.Context, filter ProductListFilter) ([]*Product, int64, error) {
	db := config.GetDB()

	query := db.WithContext(ctx).Model(&Product{})

	if filter.Search != "" {
		if id, err := strconv.Atoi(filter.Search); err == nil {
			query = query.Where("name LIKE ? OR id = ?", "%"+filter.Search+"%", id)
		} else {
			query = query.Where("name LIKE ?", "%"+filter.Search+"%")
		}
	}
	if filter.CategoryId > 0 {
		query = query.Where("category_id = ?", filter.CategoryId)
	}
	if filter.BrandId > 0 {
		query = query.Where("brand_id = ?", filter.BrandId)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []*Product
	err := query.
		Preload("Brand").Preload("Category").
		Order("created_at DESC").
		Scopes(Paginate(filter.Page, filter.Limit)).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func UpdateProduct(ctx context.Context, id int, input *NewProduct) (*Product, error) {
	product, err := GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := GetBrand(ctx, input.BrandId); err != nil {
		return nil, err
	}
	if _, err := GetCategory(ctx, input.CategoryId); err != nil {
		return nil, err
	}

	db := config.GetDB()

	product.Name = input.Name
	product.Color = input.Color
	product.RegularPrice = input.RegularPrice
	product.SalePrice = input.SalePrice
	product.WholesalePrice = input.WholesalePrice
	product.BrandId = input.BrandId
	product.CategoryId = input.CategoryId
	product.Stock = input.Stock
	product.MinStock = input.MinStock

	if err := db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return GetProduct(ctx, id)
}

func DeleteProduct(ctx context.Context, id int) error {
	product, err := GetProduct(ctx, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	return db.WithContext(ctx).Delete(product).Error
}

// GetAllProducts loads the full catalogue, for reports.
func GetAllProducts(ctx context.Context) ([]*Product, error) {
	db := config.GetDB()

	var products []*Product
	if err := db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
