package service

import (
	"context"
	"errors"
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProfileStore is the synchronizer's read view of companion profiles.
type ProfileStore interface {
	GetByID(id uint) (*models.CompanionProfile, error)
}

// ListingStore is the listing side of the synchronizer and catalog.
type ListingStore interface {
	Upsert(ctx context.Context, l *models.Listing) error
	GetByCompanionID(ctx context.Context, companionID uint) (*models.Listing, error)
}

// AccountStore covers the cross-aggregate side effect: marking the owning
// account as a companion when its profile first syncs.
type AccountStore interface {
	SetRole(id uint, role string) error
}

// SyncService keeps the public listing consistent with its source profile.
// Every profile write goes through Sync; nothing else writes listing rows
// (the admin feature flag excepted).
type SyncService struct {
	profiles ProfileStore
	listings ListingStore
	accounts AccountStore
	timeout  time.Duration
	log      *zap.Logger
}

func NewSyncService(profiles ProfileStore, listings ListingStore, accounts AccountStore, timeout time.Duration, log *zap.Logger) *SyncService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SyncService{profiles: profiles, listings: listings, accounts: accounts, timeout: timeout, log: log}
}

// Sync re-reads the profile by ID, projects it and upserts the listing.
// Taking an ID rather than a profile value enforces read-after-write: the
// projection always runs on current storage state, never a cached copy, so
// interleaved writers cannot resurrect a stale is_active. Idempotent;
// callers retry on SyncError.
func (s *SyncService) Sync(ctx context.Context, profileID uint) (*models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	p, err := s.profiles.GetByID(profileID)
	if err != nil {
		return nil, &SyncError{CompanionID: profileID, Err: err}
	}

	existing, err := s.listings.GetByCompanionID(ctx, p.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &SyncError{CompanionID: p.ID, Err: err}
	}

	l, err := BuildListing(p, existing)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		// First sync for this profile: the owning account becomes a
		// companion. Failure here surfaces like any other sync failure so
		// the caller retries the whole step.
		if err := s.accounts.SetRole(p.UserID, domain.RoleCompanion); err != nil {
			return nil, &SyncError{CompanionID: p.ID, Err: err}
		}
	}

	if err := s.listings.Upsert(ctx, l); err != nil {
		s.log.Warn("listing upsert failed",
			zap.Uint("companion_id", p.ID),
			zap.Error(err))
		return nil, &SyncError{CompanionID: p.ID, Err: err}
	}
	s.log.Debug("listing synced",
		zap.Uint("companion_id", p.ID),
		zap.Bool("is_active", l.IsActive))
	return l, nil
}
