package repository

import (
	"lab_dashboard/internal/models"
	"time"

	"gorm.io/gorm"
)

type ServiceOrderRepository interface {
	Create(order *models.ServiceOrder) error
	GetByID(id uint) (*models.ServiceOrder, error)
	GetByCode(code string) (*models.ServiceOrder, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.ServiceOrder, error)
	Update(order *models.ServiceOrder) error
	Delete(id uint) error
	GetAll() ([]models.ServiceOrder, error)
}

type serviceOrderRepository struct {
	db *gorm.DB
}

func NewServiceOrderRepository(db *gorm.DB) ServiceOrderRepository {
	return &serviceOrderRepository{db: db}
}

func (r *serviceOrderRepository) Create(order *models.ServiceOrder) error {
	return r.db.Create(order).Error
}

func (r *serviceOrderRepository) GetByID(id uint) (*models.ServiceOrder, error) {
	var order models.ServiceOrder
	err := r.db.Preload("Client").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *serviceOrderRepository) GetByCode(code string) (*models.ServiceOrder, error) {
	var order models.ServiceOrder
	err := r.db.Preload("Client").Where("order_code = ?", code).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *serviceOrderRepository) GetByDateRange(startDate, endDate time.Time) ([]models.ServiceOrder, error) {
	var orders []models.ServiceOrder
	err := r.db.Preload("Client").Where("created_at BETWEEN ? AND ?", startDate, endDate).Find(&orders).Error
	return orders, err
}

func (r *serviceOrderRepository) Update(order *models.ServiceOrder) error {
	return r.db.Save(order).Error
}

func (r *serviceOrderRepository) Delete(id uint) error {
	return r.db.Delete(&models.ServiceOrder{}, id).Error
}

func (r *serviceOrderRepository) GetAll() ([]models.ServiceOrder, error) {
	var orders []models.ServiceOrder
	err := r.db.Preload("Client").Find(&orders).Error
	return orders, err
}
