package service

import (
	"context"
	"errors"
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListingBrowser is the catalog's read view of the listing store.
type ListingBrowser interface {
	Browse(ctx context.Context, f repository.BrowseFilters) ([]models.Listing, error)
	GetByCompanionID(ctx context.Context, companionID uint) (*models.Listing, error)
}

// AccountReader resolves viewer accounts for tier computation.
type AccountReader interface {
	GetByID(id uint) (*models.User, error)
}

// CatalogService answers "which companions may this viewer see, and with
// which fields". Read-only; raw listings never leave it for non-admin
// callers.
type CatalogService struct {
	listings ListingBrowser
	accounts AccountReader
	now      func() time.Time
	log      *zap.Logger
}

func NewCatalogService(listings ListingBrowser, accounts AccountReader, now func() time.Time, log *zap.Logger) *CatalogService {
	if now == nil {
		now = time.Now
	}
	return &CatalogService{listings: listings, accounts: accounts, now: now, log: log}
}

// ViewerFor resolves the viewer context for an authenticated user ID at
// this instant. Tier is recomputed on every call: expiry is time based and
// paginated queries may be long-lived.
func (s *CatalogService) ViewerFor(userID uint) (Viewer, error) {
	u, err := s.accounts.GetByID(userID)
	if err != nil {
		return Viewer{}, &QueryError{Err: err}
	}
	return ViewerFor(u, s.now()), nil
}

// Browse lists visible companions for the viewer under filters, redacted
// per the access policy. Self-exclusion for companion viewers happens here,
// in the shared query path, so every entry point gets it.
func (s *CatalogService) Browse(ctx context.Context, v Viewer, f repository.BrowseFilters) ([]models.DisclosedListing, error) {
	if v.Role == domain.RoleCompanion {
		f.ExcludeUserID = v.UserID
	}
	rows, err := s.listings.Browse(ctx, f)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	out := make([]models.DisclosedListing, 0, len(rows))
	for i := range rows {
		l := &rows[i]
		// Second is_active check, independent of both the SQL predicate and
		// the synchronizer invariant.
		if !l.IsActive {
			continue
		}
		if v.Role == domain.RoleCompanion && l.UserID == v.UserID {
			continue
		}
		out = append(out, Disclose(v, l))
	}
	return out, nil
}

// View is the single-listing variant used by detail pages. Inactive or
// missing listings are unavailable to everyone but admins.
func (s *CatalogService) View(ctx context.Context, v Viewer, companionID uint) (*models.DisclosedListing, error) {
	l, err := s.listings.GetByCompanionID(ctx, companionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingUnavailable
		}
		return nil, &QueryError{Err: err}
	}
	if !l.IsActive && v.Role != domain.RoleAdmin {
		return nil, ErrListingUnavailable
	}
	d := Disclose(v, l)
	return &d, nil
}
