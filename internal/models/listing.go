package models

import (
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
)

// Listing is the public projection of a CompanionProfile. Only the
// synchronizer writes listing rows (is_featured excepted, which admins
// toggle directly). ContactNumber is stored here in the clear and filtered
// at read time by the access policy, so it must never be serialized raw.
type Listing struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	CompanionID uint `gorm:"uniqueIndex;not null" json:"companion_id"`
	UserID      uint `gorm:"index;not null" json:"user_id"`

	StageName   string `gorm:"size:100;not null" json:"stage_name"`
	Description string `gorm:"type:text" json:"description"`
	Age         int    `gorm:"not null" json:"age"`

	State        string `gorm:"size:100;index" json:"state"`
	City         string `gorm:"size:100" json:"city"`
	Municipality string `gorm:"size:100;index" json:"municipality"`

	ContactNumber string         `gorm:"size:32" json:"-"`
	Pricing       domain.Pricing `gorm:"type:json" json:"pricing"`
	PromotionPlan string         `gorm:"size:20;default:'BASIC';index" json:"promotion_plan"`
	PhotoURL      string         `gorm:"size:512" json:"photo_url"`

	IsFeatured bool `gorm:"default:false;index" json:"is_featured"`
	IsActive   bool `gorm:"default:false;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Listing) TableName() string {
	return "listings"
}

// DisclosedListing is the viewer-specific view of a Listing: the public
// fields plus the contact number in its three-state disclosure form.
type DisclosedListing struct {
	CompanionID   uint                `json:"companion_id"`
	StageName     string              `json:"stage_name"`
	Description   string              `json:"description"`
	Age           int                 `json:"age"`
	State         string              `json:"state"`
	City          string              `json:"city"`
	Municipality  string              `json:"municipality"`
	Pricing       domain.Pricing      `json:"pricing"`
	PromotionPlan string              `json:"promotion_plan"`
	PhotoURL      string              `json:"photo_url"`
	IsFeatured    bool                `json:"is_featured"`
	ContactNumber domain.ContactField `json:"contact_number"`
	CreatedAt     time.Time           `json:"created_at"`
}
