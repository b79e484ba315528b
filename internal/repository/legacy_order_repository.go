package repository

import (
	"lab_dashboard/internal/models"

	"gorm.io/gorm"
)

// LegacyOrderRepository reads the old flat order table. The table is
// history: no writes go through here.
type LegacyOrderRepository interface {
	GetByID(id uint) (*models.LegacyOrder, error)
	GetAll() ([]models.LegacyOrder, error)
}

type legacyOrderRepository struct {
	db *gorm.DB
}

func NewLegacyOrderRepository(db *gorm.DB) LegacyOrderRepository {
	return &legacyOrderRepository{db: db}
}

func (r *legacyOrderRepository) GetByID(id uint) (*models.LegacyOrder, error) {
	var order models.LegacyOrder
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *legacyOrderRepository) GetAll() ([]models.LegacyOrder, error) {
	var orders []models.LegacyOrder
	err := r.db.Find(&orders).Error
	return orders, err
}
