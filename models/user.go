package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/pos_backend/config"
	"bitbucket.org/mmdatafocus/pos_backend/utils"
	"gorm.io/gorm"
)

type User struct {
	ID        int       `gorm:"primary_key" json:"id"`
	UserName  string    `gorm:"size:100;uniqueIndex;not null" json:"user_name" binding:"required"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	BrandName string    `gorm:"size:100;not null" json:"brand_name"`
	Location  string    `gorm:"size:255;not null" json:"location"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Logo      string    `gorm:"type:text" json:"logo"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUser struct {
	UserName  string `json:"userName" binding:"required"`
	Password  string `json:"password" binding:"required"`
	BrandName string `json:"brandName" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Logo      string `json:"logo"`
}

// UpdateUserInput mirrors NewUser but the password is optional; an empty
// one keeps the stored hash.
type UpdateUserInput struct {
	UserName  string `json:"userName" binding:"required"`
	Password  string `json:"password"`
	BrandName string `json:"brandName" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Logo      string `json:"logo"`
}

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {
	db := config.GetDB()

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := User{
		UserName:  input.UserName,
		Password:  string(hashed),
		BrandName: input.BrandName,
		Location:  input.Location,
		Phone:     input.Phone,
		Logo:      input.Logo,
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUser(ctx context.Context, id int) (*User, error) {
	db := config.GetDB()

	var user User
	err := db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByUserName(ctx context.Context, userName string) (*User, error) {
	db := config.GetDB()

	var user User
	err := db.WithContext(ctx).Where("user_name = ?", userName).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUsers(ctx context.Context) ([]*User, error) {
	db := config.GetDB()

	var users []*User
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func UpdateUser(ctx context.Context, id int, input *UpdateUserInput) (*User, error) {
	user, err := GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()

	user.UserName = input.UserName
	user.BrandName = input.BrandName
	user.Location = input.Location
	user.Phone = input.Phone
	user.Logo = input.Logo
	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func DeleteUser(ctx context.Context, id int) error {
	user, err := GetUser(ctx, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	return db.WithContext(ctx).Delete(user).Error
}
