package service

import (
	"strings"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"
)

// BuildListing derives the public listing from a private profile. Viewer
// independent: the contact number is copied through and filtered later at
// read time by the access policy. existing is the current listing row if
// one exists; is_featured and the original ID/created_at carry over from it
// so the upsert never resets admin or publish-time state.
func BuildListing(p *models.CompanionProfile, existing *models.Listing) (*models.Listing, error) {
	if strings.TrimSpace(p.StageName) == "" {
		return nil, &ValidationError{Field: "stage_name", Reason: "must not be empty"}
	}
	if p.Age < domain.MinCompanionAge {
		return nil, &ValidationError{Field: "age", Reason: "must be 18 or older"}
	}
	l := &models.Listing{
		CompanionID:   p.ID,
		UserID:        p.UserID,
		StageName:     p.StageName,
		Description:   p.Description,
		Age:           p.Age,
		State:         p.State,
		City:          p.City,
		Municipality:  p.Municipality,
		ContactNumber: p.ContactNumber,
		Pricing:       p.Pricing,
		PromotionPlan: p.PromotionPlan,
		PhotoURL:      p.PhotoURL,
		IsActive:      p.Publishable(),
	}
	if existing != nil {
		l.ID = existing.ID
		l.IsFeatured = existing.IsFeatured
		l.CreatedAt = existing.CreatedAt
	}
	return l, nil
}
