package models

import (
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"

	"gorm.io/gorm"
)

// CompanionProfile is the private record owned by the companion. It is the
// source of truth the public Listing is projected from; it is never served
// to clients directly.
type CompanionProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	StageName   string `gorm:"size:100;not null" json:"stage_name"`
	RealName    string `gorm:"size:150" json:"-"` // admin accessor only, never serialized
	Age         int    `gorm:"not null" json:"age"`
	Description string `gorm:"type:text" json:"description"`

	State        string `gorm:"size:100;index" json:"state"`
	City         string `gorm:"size:100" json:"city"`
	Municipality string `gorm:"size:100;index" json:"municipality"`

	ContactNumber string         `gorm:"size:32" json:"contact_number"`
	Pricing       domain.Pricing `gorm:"type:json" json:"pricing"`
	PromotionPlan string         `gorm:"size:20;default:'BASIC'" json:"promotion_plan"`
	PhotoURL      string         `gorm:"size:512" json:"photo_url"`

	Status   string `gorm:"size:20;not null;default:'PENDING';index" json:"status"` // PENDING | APPROVED | REJECTED | SUSPENDED
	IsActive bool   `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (CompanionProfile) TableName() string {
	return "companion_profiles"
}

// Publishable reports whether the profile may appear as an active listing.
func (p *CompanionProfile) Publishable() bool {
	return p.IsActive && p.Status == domain.ProfileStatusApproved
}
