package mysql

import (
	"Blogicum/internal/model"

	"gorm.io/gorm"
)

type LocationRepository struct {
	DB *gorm.DB
}

func (r *LocationRepository) FindByID(id uint64) (*model.Location, error) {
	var location model.Location
	err := r.DB.First(&location, id).Error
	return &location, err
}
