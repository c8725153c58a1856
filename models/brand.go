package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/pos_backend/config"
	"gorm.io/gorm"
)

type Brand struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name" binding:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewBrand struct {
	Name string `json:"name" binding:"required"`
}

func CreateBrand(ctx context.Context, input *NewBrand) (*Brand, error) {
	db := config.GetDB()

	brand := Brand{Name: input.Name}
	if err := db.WithContext(ctx).Create(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func GetBrand(ctx context.Context, id int) (*Brand, error) {
	db := config.GetDB()

	var brand Brand
	err := db.WithContext(ctx).First(&brand, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBrandNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func GetBrands(ctx context.Context) ([]*Brand, error) {
	db := config.GetDB()

	var brands []*Brand
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func UpdateBrand(ctx context.Context, id int, input *NewBrand) (*Brand, error) {
	brand, err := GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	brand.Name = input.Name
	if err := db.WithContext(ctx).Save(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

func DeleteBrand(ctx context.Context, id int) error {
	brand, err := GetBrand(ctx, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	return db.WithContext(ctx).Delete(brand).Error
}
