package repository

import (
	"errors"

	"salon-booking-api/internal/domain/entity"
	domainRepo "salon-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type blockedPhoneRepository struct{}

func NewBlockedPhoneRepository() domainRepo.BlockedPhoneRepository {
	return &blockedPhoneRepository{}
}

func (r *blockedPhoneRepository) Find(db *gorm.DB, phone string) (*entity.BlockedPhone, error) {
	var record entity.BlockedPhone
	err := db.Where("phone = ?", phone).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *blockedPhoneRepository) Save(db *gorm.DB, record *entity.BlockedPhone) error {
	return db.Save(record).Error
}
