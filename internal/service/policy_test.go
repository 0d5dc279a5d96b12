package service

import (
	"testing"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"

	"github.com/stretchr/testify/require"
)

func listing(plan string, userID uint) *models.Listing {
	return &models.Listing{
		CompanionID:   1,
		UserID:        userID,
		StageName:     "Aria",
		ContactNumber: "555-1111",
		PromotionPlan: plan,
		IsActive:      true,
	}
}

func client(tier string) Viewer {
	return Viewer{UserID: 100, Role: domain.RoleClient, Tier: tier}
}

func TestDiscloseAnonymousAlwaysRedacted(t *testing.T) {
	for _, plan := range []string{domain.PlanBasic, domain.PlanPremium, domain.PlanVIP} {
		d := Disclose(AnonymousViewer(), listing(plan, 2))
		require.False(t, d.ContactNumber.Disclosed, plan)
		require.Equal(t, domain.RedactRequiresAuth, d.ContactNumber.Reason, plan)
		require.Empty(t, d.ContactNumber.Value, plan)
	}
}

func TestDiscloseClientTiers(t *testing.T) {
	tests := []struct {
		name       string
		plan       string
		tier       string
		disclosed  bool
		wantReason string
	}{
		{"no sub, basic listing", domain.PlanBasic, domain.TierNone, false, domain.RedactRequiresUpgrade},
		{"basic sub, basic listing", domain.PlanBasic, domain.TierBasic, true, ""},
		{"vip sub, basic listing", domain.PlanBasic, domain.TierVIP, true, ""},
		{"basic sub, premium listing", domain.PlanPremium, domain.TierBasic, false, domain.RedactRequiresUpgrade},
		{"premium sub, premium listing", domain.PlanPremium, domain.TierPremium, true, ""},
		{"basic sub, vip listing", domain.PlanVIP, domain.TierBasic, false, domain.RedactRequiresUpgrade},
		{"vip sub, vip listing", domain.PlanVIP, domain.TierVIP, true, ""},
		{"premium sub, vip listing", domain.PlanVIP, domain.TierPremium, true, ""},
		{"no sub, premium listing", domain.PlanPremium, domain.TierNone, false, domain.RedactRequiresUpgrade},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Disclose(client(tt.tier), listing(tt.plan, 2))
			require.Equal(t, tt.disclosed, d.ContactNumber.Disclosed)
			if tt.disclosed {
				require.Equal(t, "555-1111", d.ContactNumber.Value)
			} else {
				require.Equal(t, tt.wantReason, d.ContactNumber.Reason)
			}
		})
	}
}

func TestDiscloseUnknownPlanUsesBasicRules(t *testing.T) {
	// Fail toward the lower bar: unknown plans behave like BASIC, which
	// already requires authentication plus some paid tier.
	d := Disclose(client(domain.TierBasic), listing("PLATINUM", 2))
	require.True(t, d.ContactNumber.Disclosed)

	d = Disclose(client(domain.TierNone), listing("", 2))
	require.False(t, d.ContactNumber.Disclosed)
	require.Equal(t, domain.RedactRequiresUpgrade, d.ContactNumber.Reason)
}

func TestDiscloseCompanionViewers(t *testing.T) {
	me := Viewer{UserID: 5, Role: domain.RoleCompanion, Tier: domain.TierVIP}

	// Another companion's listing: never disclosed, personal subscription
	// or not.
	d := Disclose(me, listing(domain.PlanBasic, 2))
	require.False(t, d.ContactNumber.Disclosed)
	require.Equal(t, domain.RedactNotPermitted, d.ContactNumber.Reason)

	// Own listing: disclosed.
	d = Disclose(me, listing(domain.PlanVIP, 5))
	require.True(t, d.ContactNumber.Disclosed)
	require.Equal(t, "555-1111", d.ContactNumber.Value)
}

func TestDiscloseAdminAlwaysDisclosed(t *testing.T) {
	admin := Viewer{UserID: 1, Role: domain.RoleAdmin, Tier: domain.TierNone}
	for _, plan := range []string{domain.PlanBasic, domain.PlanPremium, domain.PlanVIP, "???"} {
		d := Disclose(admin, listing(plan, 2))
		require.True(t, d.ContactNumber.Disclosed, plan)
		require.Equal(t, "555-1111", d.ContactNumber.Value, plan)
	}
}

func TestDiscloseRedactionReasonsAreDistinct(t *testing.T) {
	l := listing(domain.PlanPremium, 2)

	anon := Disclose(AnonymousViewer(), l).ContactNumber.Reason
	upgrade := Disclose(client(domain.TierBasic), l).ContactNumber.Reason
	wrongRole := Disclose(Viewer{UserID: 9, Role: domain.RoleCompanion}, l).ContactNumber.Reason

	require.NotEqual(t, anon, upgrade)
	require.NotEqual(t, anon, wrongRole)
	require.NotEqual(t, upgrade, wrongRole)
}
