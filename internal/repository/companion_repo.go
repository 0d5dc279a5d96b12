package repository

import (
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"

	"gorm.io/gorm"
)

type CompanionRepository struct {
	db *gorm.DB
}

func NewCompanionRepository(db *gorm.DB) *CompanionRepository {
	return &CompanionRepository{db: db}
}

func (r *CompanionRepository) Create(p *models.CompanionProfile) error {
	return r.db.Create(p).Error
}

func (r *CompanionRepository) GetByID(id uint) (*models.CompanionProfile, error) {
	var p models.CompanionProfile
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CompanionRepository) GetByUserID(userID uint) (*models.CompanionProfile, error) {
	var p models.CompanionProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CompanionRepository) Update(p *models.CompanionProfile) error {
	return r.db.Save(p).Error
}

func (r *CompanionRepository) SetStatus(id uint, status string) error {
	return r.db.Model(&models.CompanionProfile{}).Where("id = ?", id).Update("status", status).Error
}

func (r *CompanionRepository) ListByStatus(status string, limit, offset int) ([]models.CompanionProfile, error) {
	if limit <= 0 {
		limit = 50
	}
	var ps []models.CompanionProfile
	q := r.db.Order("created_at ASC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&ps).Error
	return ps, err
}
