package repository

import (
	"context"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BrowseFilters for the public catalog. All fields optional.
type BrowseFilters struct {
	State            string
	Municipality     string
	ContactSubstring string
	ExcludeUserID    uint // self-exclusion for companion viewers
	Limit            int
	Offset           int
}

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Upsert writes the projected listing keyed on companion_id. On conflict it
// updates every projected column but leaves is_featured and created_at
// alone: the former is admin-owned, the latter is the original publish
// time. Single atomic statement, safe to re-issue.
func (r *ListingRepository) Upsert(ctx context.Context, l *models.Listing) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "companion_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_id", "stage_name", "description", "age",
			"state", "city", "municipality",
			"contact_number", "pricing", "promotion_plan", "photo_url",
			"is_active", "updated_at",
		}),
	}).Create(l).Error
}

func (r *ListingRepository) GetByCompanionID(ctx context.Context, companionID uint) (*models.Listing, error) {
	var l models.Listing
	err := r.db.WithContext(ctx).Where("companion_id = ?", companionID).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// SetFeatured toggles the admin-owned flag directly; it is the one listing
// column the synchronizer does not own.
func (r *ListingRepository) SetFeatured(ctx context.Context, companionID uint, featured bool) error {
	return r.db.WithContext(ctx).Model(&models.Listing{}).
		Where("companion_id = ?", companionID).
		Update("is_featured", featured).Error
}

// Browse returns active listings under filters, ordered featured first,
// then plan display priority, then newest. The is_active predicate here is
// the first of two checks; the catalog service re-checks each row.
func (r *ListingRepository) Browse(ctx context.Context, f BrowseFilters) ([]models.Listing, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	q := r.db.WithContext(ctx).Model(&models.Listing{}).Where("is_active = ?", true)
	if f.State != "" {
		q = q.Where("state = ?", f.State)
	}
	if f.Municipality != "" {
		q = q.Where("municipality = ?", f.Municipality)
	}
	if f.ContactSubstring != "" {
		q = q.Where("contact_number LIKE ?", "%"+f.ContactSubstring+"%")
	}
	if f.ExcludeUserID != 0 {
		q = q.Where("user_id <> ?", f.ExcludeUserID)
	}
	var ls []models.Listing
	err := q.Order("is_featured DESC").
		Order("CASE promotion_plan WHEN 'VIP' THEN 0 WHEN 'PREMIUM' THEN 1 ELSE 2 END").
		Order("created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&ls).Error
	return ls, err
}
