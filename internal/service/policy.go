package service

import (
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"
)

// Disclose builds the viewer-specific view of a listing. It never fails:
// under-privileged viewers get a redacted view with the reason they need to
// act on, not an error. RealName is not part of the listing at all and so
// can never leak through here.
func Disclose(v Viewer, l *models.Listing) models.DisclosedListing {
	out := models.DisclosedListing{
		CompanionID:   l.CompanionID,
		StageName:     l.StageName,
		Description:   l.Description,
		Age:           l.Age,
		State:         l.State,
		City:          l.City,
		Municipality:  l.Municipality,
		Pricing:       l.Pricing,
		PromotionPlan: l.PromotionPlan,
		PhotoURL:      l.PhotoURL,
		IsFeatured:    l.IsFeatured,
		CreatedAt:     l.CreatedAt,
	}
	out.ContactNumber = discloseContact(v, l)
	return out
}

func discloseContact(v Viewer, l *models.Listing) domain.ContactField {
	switch {
	case v.Anonymous:
		return domain.RedactedContact(domain.RedactRequiresAuth)
	case v.Role == domain.RoleAdmin:
		return domain.DisclosedContact(l.ContactNumber)
	case v.Role == domain.RoleCompanion:
		// Companions see their own contact info; never another companion's,
		// subscription or not.
		if l.UserID == v.UserID {
			return domain.DisclosedContact(l.ContactNumber)
		}
		return domain.RedactedContact(domain.RedactNotPermitted)
	case v.Role == domain.RoleClient:
		switch l.PromotionPlan {
		case domain.PlanPremium, domain.PlanVIP:
			if v.Tier == domain.TierPremium || v.Tier == domain.TierVIP {
				return domain.DisclosedContact(l.ContactNumber)
			}
			return domain.RedactedContact(domain.RedactRequiresUpgrade)
		default:
			// BASIC, and any unrecognized plan, require only some paid tier.
			if v.Tier != domain.TierNone {
				return domain.DisclosedContact(l.ContactNumber)
			}
			return domain.RedactedContact(domain.RedactRequiresUpgrade)
		}
	}
	return domain.RedactedContact(domain.RedactNotPermitted)
}
