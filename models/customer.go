package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/pos_backend/config"
	"gorm.io/gorm"
)

type Customer struct {
	ID           int        `gorm:"primary_key" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name" binding:"required"`
	Phone        string     `gorm:"size:20;index;not null" json:"phone" binding:"required"`
	BirthdayDate *time.Time `json:"birthday_date"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCustomer struct {
	Name         string     `json:"name" binding:"required"`
	Phone        string     `json:"phone" binding:"required"`
	BirthdayDate *time.Time `json:"birthdayDate"`
}

func CreateCustomer(ctx context.Context, input *NewCustomer) (*Customer, error) {
	db := config.GetDB()

	customer := Customer{
		Name:         input.Name,
		Phone:        input.Phone,
		BirthdayDate: input.BirthdayDate,
	}

	tx := db.Begin()
	if err := createCustomerTx(tx.WithContext(ctx), &customer); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// createCustomerTx assigns the next sequential id and inserts the row inside
// the caller's transaction. Order placement reuses it for implicit creation.
func createCustomerTx(tx *gorm.DB, customer *Customer) error {
	id, err := NextSequence(tx, "Customer")
	if err != nil {
		return err
	}
	customer.ID = id
	return tx.Create(customer).Error
}

func GetCustomer(ctx context.Context, id int) (*Customer, error) {
	db := config.GetDB()

	var customer Customer
	err := db.WithContext(ctx).First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetCustomerByPhone looks a customer up by exact phone. Phone uniqueness is
// enforced by this lookup-before-create, not a DB constraint.
func GetCustomerByPhone(ctx context.Context, phone string) (*Customer, error) {
	db := config.GetDB()

	var customer Customer
	err := db.WithContext(ctx).Where("phone = ?", phone).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

type CustomerListFilter struct {
	Search string
	Page   int
	Limit  int
}

func PaginateCustomers(ctx context.Context, filter CustomerListFilter) ([]*Customer, int64, error) {
	db := config.GetDB()

	query := db.WithContext(ctx).Model(&Customer{})
	if filter.Search != "" {
		query = query.Where("name LIKE ? OR phone = ?", "%"+filter.Search+"%", filter.Search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []*Customer
	err := query.
		Order("created_at DESC").
		Scopes(Paginate(filter.Page, filter.Limit)).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func UpdateCustomer(ctx context.Context, id int, input *NewCustomer) (*Customer, error) {
	customer, err := GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()

	customer.Name = input.Name
	customer.Phone = input.Phone
	customer.BirthdayDate = input.BirthdayDate

	if err := db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func DeleteCustomer(ctx context.Context, id int) error {
	customer, err := GetCustomer(ctx, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	return db.WithContext(ctx).Delete(customer).Error
}
