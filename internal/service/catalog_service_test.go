package service

import (
	"context"
	"testing"
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalogFixture() (*CatalogService, *fakeStore) {
	store := newFakeStore()
	now := func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	svc := NewCatalogService(store, userReader{store}, now, zap.NewNop())
	return svc, store
}

func addListing(store *fakeStore, companionID, userID uint, plan string, active bool) {
	store.listings[companionID] = &models.Listing{
		ID:            companionID,
		CompanionID:   companionID,
		UserID:        userID,
		StageName:     "c",
		ContactNumber: "555-0000",
		PromotionPlan: plan,
		IsActive:      active,
		CreatedAt:     time.Date(2026, 1, int(companionID), 0, 0, 0, 0, time.UTC),
	}
}

func TestBrowseFiltersInactive(t *testing.T) {
	svc, store := newCatalogFixture()
	addListing(store, 1, 10, domain.PlanBasic, true)
	addListing(store, 2, 11, domain.PlanBasic, false)

	out, err := svc.Browse(context.Background(), AnonymousViewer(), repository.BrowseFilters{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, uint(1), out[0].CompanionID)
}

func TestBrowseSelfExclusionForCompanions(t *testing.T) {
	svc, store := newCatalogFixture()
	addListing(store, 1, 10, domain.PlanBasic, true)
	addListing(store, 2, 11, domain.PlanBasic, true)

	me := Viewer{UserID: 10, Role: domain.RoleCompanion}
	out, err := svc.Browse(context.Background(), me, repository.BrowseFilters{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, uint(2), out[0].CompanionID)

	// Clients see both.
	out, err = svc.Browse(context.Background(), client(domain.TierNone), repository.BrowseFilters{})
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestBrowseOrdering(t *testing.T) {
	svc, store := newCatalogFixture()
	addListing(store, 1, 10, domain.PlanBasic, true)
	addListing(store, 2, 11, domain.PlanVIP, true)
	addListing(store, 3, 12, domain.PlanPremium, true)
	addListing(store, 4, 13, domain.PlanBasic, true)
	store.listings[4].IsFeatured = true

	out, err := svc.Browse(context.Background(), AnonymousViewer(), repository.BrowseFilters{})
	require.NoError(t, err)
	require.Len(t, out, 4)
	// Featured first, then vip < premium < basic.
	require.Equal(t, uint(4), out[0].CompanionID)
	require.Equal(t, uint(2), out[1].CompanionID)
	require.Equal(t, uint(3), out[2].CompanionID)
	require.Equal(t, uint(1), out[3].CompanionID)
}

func TestBrowseAppliesPolicyPerRow(t *testing.T) {
	svc, store := newCatalogFixture()
	addListing(store, 1, 10, domain.PlanBasic, true)
	addListing(store, 2, 11, domain.PlanVIP, true)

	out, err := svc.Browse(context.Background(), client(domain.TierBasic), repository.BrowseFilters{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	byID := map[uint]models.DisclosedListing{}
	for _, d := range out {
		byID[d.CompanionID] = d
	}
	require.True(t, byID[1].ContactNumber.Disclosed)
	require.False(t, byID[2].ContactNumber.Disclosed)
	require.Equal(t, domain.RedactRequiresUpgrade, byID[2].ContactNumber.Reason)
}

// End-to-end scenario: a premium-plan listing seen by basic and premium
// tier clients resolved through the account store.
func TestBrowseScenarioPremiumListing(t *testing.T) {
	svc, store := newCatalogFixture()
	addListing(store, 1, 10, domain.PlanPremium, true)
	store.listings[1].StageName = "Aria"
	store.listings[1].ContactNumber = "555-1111"

	future := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	store.users[20] = &models.User{ID: 20, Role: domain.RoleClient, SubscriptionType: domain.TierBasic, SubscriptionExpiresAt: &future}
	store.users[21] = &models.User{ID: 21, Role: domain.RoleClient, SubscriptionType: domain.TierPremium, SubscriptionExpiresAt: &future}

	basicViewer, err := svc.ViewerFor(20)
	require.NoError(t, err)
	out, err := svc.Browse(context.Background(), basicViewer, repository.BrowseFilters{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "Aria", out[0].StageName)
	require.False(t, out[0].ContactNumber.Disclosed)
	require.Equal(t, domain.RedactRequiresUpgrade, out[0].ContactNumber.Reason)

	premiumViewer, err := svc.ViewerFor(21)
	require.NoError(t, err)
	out, err = svc.Browse(context.Background(), premiumViewer, repository.BrowseFilters{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0].ContactNumber.Disclosed)
	require.Equal(t, "555-1111", out[0].ContactNumber.Value)
}

func TestViewInactiveListingUnavailable(t *testing.T) {
	svc, store := newCatalogFixture()
	addListing(store, 1, 10, domain.PlanBasic, false)

	_, err := svc.View(context.Background(), client(domain.TierVIP), 1)
	require.ErrorIs(t, err, ErrListingUnavailable)

	// Admins still see it (moderation needs the detail view).
	d, err := svc.View(context.Background(), Viewer{UserID: 1, Role: domain.RoleAdmin}, 1)
	require.NoError(t, err)
	require.True(t, d.ContactNumber.Disclosed)
}

func TestViewMissingListing(t *testing.T) {
	svc, _ := newCatalogFixture()
	_, err := svc.View(context.Background(), AnonymousViewer(), 404)
	require.ErrorIs(t, err, ErrListingUnavailable)
}
