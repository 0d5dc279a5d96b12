package models

import (
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:64;not null;default:''" json:"username"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         string `gorm:"size:20;not null;index" json:"role"` // CLIENT | COMPANION | ADMIN

	// Subscription fields are written by the payment gateway webhook only;
	// the core reads them and derives the effective tier at query time.
	SubscriptionType      string     `gorm:"size:20" json:"subscription_type"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at"`

	GoogleID  *string        `gorm:"uniqueIndex;size:255" json:"-"` // nil for email signups (avoids duplicate '' on unique index)
	AvatarURL string         `gorm:"size:512" json:"avatar_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanionProfile *CompanionProfile `gorm:"foreignKey:UserID" json:"companion_profile,omitempty"`
}

func (u *User) IsCompanion() bool { return u.Role == domain.RoleCompanion }
func (u *User) IsClient() bool    { return u.Role == domain.RoleClient }
func (u *User) IsAdmin() bool     { return u.Role == domain.RoleAdmin }
