package service

import (
	"testing"
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"

	"github.com/stretchr/testify/require"
)

func validProfile() *models.CompanionProfile {
	return &models.CompanionProfile{
		ID:            7,
		UserID:        3,
		StageName:     "Aria",
		RealName:      "Jane Doe",
		Age:           20,
		Description:   "hi",
		State:         "Jalisco",
		City:          "Guadalajara",
		Municipality:  "Zapopan",
		ContactNumber: "555-1111",
		Pricing:       domain.Pricing{BasicChatCents: 500, PremiumChatCents: 1500, VideoCallCents: 3000},
		PromotionPlan: domain.PlanPremium,
		Status:        domain.ProfileStatusApproved,
		IsActive:      true,
	}
}

func TestBuildListingCopiesFields(t *testing.T) {
	p := validProfile()
	l, err := BuildListing(p, nil)
	require.NoError(t, err)

	require.Equal(t, p.ID, l.CompanionID)
	require.Equal(t, p.UserID, l.UserID)
	require.Equal(t, p.StageName, l.StageName)
	require.Equal(t, p.Age, l.Age)
	require.Equal(t, p.State, l.State)
	require.Equal(t, p.Municipality, l.Municipality)
	require.Equal(t, p.Pricing, l.Pricing)
	require.Equal(t, p.PromotionPlan, l.PromotionPlan)
	// Contact is copied at write time; redaction is a read-time concern.
	require.Equal(t, "555-1111", l.ContactNumber)
	require.True(t, l.IsActive)
	require.False(t, l.IsFeatured)
}

func TestBuildListingActiveDerivation(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		isActive bool
		want     bool
	}{
		{"approved and active", domain.ProfileStatusApproved, true, true},
		{"approved but deactivated", domain.ProfileStatusApproved, false, false},
		{"pending", domain.ProfileStatusPending, true, false},
		{"rejected", domain.ProfileStatusRejected, true, false},
		{"suspended", domain.ProfileStatusSuspended, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			p.Status = tt.status
			p.IsActive = tt.isActive
			l, err := BuildListing(p, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, l.IsActive)
		})
	}
}

func TestBuildListingPreservesExistingAdminState(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &models.Listing{ID: 99, IsFeatured: true, CreatedAt: created}

	l, err := BuildListing(validProfile(), existing)
	require.NoError(t, err)
	require.Equal(t, uint(99), l.ID)
	require.True(t, l.IsFeatured)
	require.Equal(t, created, l.CreatedAt)
}

func TestBuildListingValidation(t *testing.T) {
	p := validProfile()
	p.StageName = "   "
	_, err := BuildListing(p, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "stage_name", verr.Field)

	p = validProfile()
	p.Age = 17
	_, err = BuildListing(p, nil)
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "age", verr.Field)
}

func TestBuildListingNeverCarriesRealName(t *testing.T) {
	l, err := BuildListing(validProfile(), nil)
	require.NoError(t, err)
	// The listing type has no real-name field at all; the closest thing is
	// the stage name, which must not have been swapped.
	require.Equal(t, "Aria", l.StageName)
	require.NotContains(t, l.Description, "Jane Doe")
}
