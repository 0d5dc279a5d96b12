package service

import (
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"
)

// Viewer is the explicit evaluation context for browse/view calls. It
// replaces any ambient "current session" state: whoever calls the catalog
// builds one and passes it in.
type Viewer struct {
	Anonymous bool
	UserID    uint
	Role      string
	Tier      string
}

func AnonymousViewer() Viewer {
	return Viewer{Anonymous: true, Tier: domain.TierNone}
}

// ResolveTier computes the effective subscription tier at the given
// instant. Pure; expiry is time-based so callers resolve per access and
// never cache the result across a query.
func ResolveTier(u *models.User, now time.Time) string {
	if u == nil || u.SubscriptionExpiresAt == nil || !u.SubscriptionExpiresAt.After(now) {
		return domain.TierNone
	}
	switch u.SubscriptionType {
	case domain.TierBasic, domain.TierPremium, domain.TierVIP:
		return u.SubscriptionType
	}
	return domain.TierNone
}

// ViewerFor builds the evaluation context for an authenticated account.
func ViewerFor(u *models.User, now time.Time) Viewer {
	return Viewer{
		UserID: u.ID,
		Role:   u.Role,
		Tier:   ResolveTier(u, now),
	}
}
