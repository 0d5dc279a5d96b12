package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSyncFixture() (*SyncService, *fakeStore) {
	store := newFakeStore()
	svc := NewSyncService(store, store, store, time.Second, zap.NewNop())
	return svc, store
}

func TestSyncCreatesListingAndMarksRole(t *testing.T) {
	svc, store := newSyncFixture()
	p := validProfile()
	store.profiles[p.ID] = p
	store.users[p.UserID] = &models.User{ID: p.UserID, Role: domain.RoleClient}

	l, err := svc.Sync(context.Background(), p.ID)
	require.NoError(t, err)
	require.True(t, l.IsActive)
	require.Equal(t, p.ID, l.CompanionID)
	require.Equal(t, []uint{p.UserID}, store.setRoleCalls)
	require.Equal(t, domain.RoleCompanion, store.users[p.UserID].Role)
	require.Len(t, store.listings, 1)
}

func TestSyncIsIdempotent(t *testing.T) {
	svc, store := newSyncFixture()
	p := validProfile()
	store.profiles[p.ID] = p
	store.users[p.UserID] = &models.User{ID: p.UserID}

	first, err := svc.Sync(context.Background(), p.ID)
	require.NoError(t, err)
	second, err := svc.Sync(context.Background(), p.ID)
	require.NoError(t, err)

	require.Equal(t, first.CompanionID, second.CompanionID)
	require.Equal(t, first.StageName, second.StageName)
	require.Equal(t, first.ContactNumber, second.ContactNumber)
	require.Equal(t, first.IsActive, second.IsActive)
	require.Len(t, store.listings, 1)
	// Role side effect fires on first sync only.
	require.Equal(t, []uint{p.UserID}, store.setRoleCalls)
}

func TestSyncDeactivationFlipsExistingRow(t *testing.T) {
	svc, store := newSyncFixture()
	p := validProfile()
	store.profiles[p.ID] = p
	store.users[p.UserID] = &models.User{ID: p.UserID}

	l, err := svc.Sync(context.Background(), p.ID)
	require.NoError(t, err)
	require.True(t, l.IsActive)

	p.IsActive = false
	l, err = svc.Sync(context.Background(), p.ID)
	require.NoError(t, err)
	require.False(t, l.IsActive)
	// Upsert on companion_id: no duplicate row.
	require.Len(t, store.listings, 1)
	require.False(t, store.listings[p.ID].IsActive)
}

func TestSyncPreservesFeaturedFlag(t *testing.T) {
	svc, store := newSyncFixture()
	p := validProfile()
	store.profiles[p.ID] = p
	store.users[p.UserID] = &models.User{ID: p.UserID}

	_, err := svc.Sync(context.Background(), p.ID)
	require.NoError(t, err)
	store.listings[p.ID].IsFeatured = true // admin toggles it

	p.Description = "updated"
	_, err = svc.Sync(context.Background(), p.ID)
	require.NoError(t, err)
	require.True(t, store.listings[p.ID].IsFeatured)
	require.Equal(t, "updated", store.listings[p.ID].Description)
}

func TestSyncReadsCurrentProfileState(t *testing.T) {
	svc, store := newSyncFixture()
	p := validProfile()
	store.profiles[p.ID] = p
	store.users[p.UserID] = &models.User{ID: p.UserID}

	// A concurrent writer deactivates the profile after the caller decided
	// to sync; the re-read must pick that up.
	p.IsActive = false
	l, err := svc.Sync(context.Background(), p.ID)
	require.NoError(t, err)
	require.False(t, l.IsActive)
}

func TestSyncSurfacesUpsertFailure(t *testing.T) {
	svc, store := newSyncFixture()
	p := validProfile()
	store.profiles[p.ID] = p
	store.users[p.UserID] = &models.User{ID: p.UserID}
	store.upsertErr = errors.New("deadline exceeded")

	_, err := svc.Sync(context.Background(), p.ID)
	var serr *SyncError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, p.ID, serr.CompanionID)

	// Retry after the store recovers succeeds.
	store.upsertErr = nil
	l, err := svc.Sync(context.Background(), p.ID)
	require.NoError(t, err)
	require.True(t, l.IsActive)
}

func TestSyncRejectsInvalidProfile(t *testing.T) {
	svc, store := newSyncFixture()
	p := validProfile()
	p.StageName = ""
	store.profiles[p.ID] = p

	_, err := svc.Sync(context.Background(), p.ID)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Empty(t, store.listings)
}

func TestSyncMissingProfileIsSyncError(t *testing.T) {
	svc, _ := newSyncFixture()
	_, err := svc.Sync(context.Background(), 404)
	var serr *SyncError
	require.ErrorAs(t, err, &serr)
}
