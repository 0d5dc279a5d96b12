package domain

const (
	RoleClient    = "CLIENT"
	RoleCompanion = "COMPANION"
	RoleAdmin     = "ADMIN"
)

const (
	ProfileStatusPending   = "PENDING"
	ProfileStatusApproved  = "APPROVED"
	ProfileStatusRejected  = "REJECTED"
	ProfileStatusSuspended = "SUSPENDED"
)

// Subscription tiers held by CLIENT accounts.
const (
	TierNone    = "NONE"
	TierBasic   = "BASIC"
	TierPremium = "PREMIUM"
	TierVIP     = "VIP"
)

// Promotion plans a companion publishes a listing under. Independent of any
// client's subscription tier.
const (
	PlanBasic   = "BASIC"
	PlanPremium = "PREMIUM"
	PlanVIP     = "VIP"
)

// PlanPriority is the catalog display ordering key: lower surfaces first.
// Unrecognized plans sort with BASIC.
func PlanPriority(plan string) int {
	switch plan {
	case PlanVIP:
		return 0
	case PlanPremium:
		return 1
	default:
		return 2
	}
}

// MinCompanionAge is the minimum age accepted on a companion profile.
const MinCompanionAge = 18
