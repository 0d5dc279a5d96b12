package service

import (
	"context"
	"sort"
	"strings"

	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/domain"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/models"
	"github.com/MortiPrime/rent-a-waifu-online-sub000/internal/repository"

	"gorm.io/gorm"
)

// fakeStore is an in-memory stand-in for the gorm repositories. Its Upsert
// mirrors the real repository contract: keyed on companion_id, existing
// rows keep is_featured and created_at.
type fakeStore struct {
	profiles map[uint]*models.CompanionProfile
	listings map[uint]*models.Listing
	users    map[uint]*models.User

	upsertErr  error
	getErr     error
	setRoleErr error

	setRoleCalls []uint
	nextListing  uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: make(map[uint]*models.CompanionProfile),
		listings: make(map[uint]*models.Listing),
		users:    make(map[uint]*models.User),
	}
}

func (s *fakeStore) GetByID(id uint) (*models.CompanionProfile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakeStore) GetByCompanionID(_ context.Context, companionID uint) (*models.Listing, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	l, ok := s.listings[companionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cl := *l
	return &cl, nil
}

func (s *fakeStore) Upsert(_ context.Context, l *models.Listing) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	if existing, ok := s.listings[l.CompanionID]; ok {
		updated := *l
		updated.ID = existing.ID
		updated.IsFeatured = existing.IsFeatured
		updated.CreatedAt = existing.CreatedAt
		s.listings[l.CompanionID] = &updated
		return nil
	}
	s.nextListing++
	stored := *l
	stored.ID = s.nextListing
	s.listings[l.CompanionID] = &stored
	return nil
}

func (s *fakeStore) SetRole(id uint, role string) error {
	if s.setRoleErr != nil {
		return s.setRoleErr
	}
	s.setRoleCalls = append(s.setRoleCalls, id)
	if u, ok := s.users[id]; ok {
		u.Role = role
	}
	return nil
}

func (s *fakeStore) Browse(_ context.Context, f repository.BrowseFilters) ([]models.Listing, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	var out []models.Listing
	for _, l := range s.listings {
		if !l.IsActive {
			continue
		}
		if f.State != "" && l.State != f.State {
			continue
		}
		if f.Municipality != "" && l.Municipality != f.Municipality {
			continue
		}
		if f.ContactSubstring != "" && !strings.Contains(l.ContactNumber, f.ContactSubstring) {
			continue
		}
		if f.ExcludeUserID != 0 && l.UserID == f.ExcludeUserID {
			continue
		}
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsFeatured != out[j].IsFeatured {
			return out[i].IsFeatured
		}
		pi, pj := domain.PlanPriority(out[i].PromotionPlan), domain.PlanPriority(out[j].PromotionPlan)
		if pi != pj {
			return pi < pj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *fakeStore) GetUserByID(id uint) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cu := *u
	return &cu, nil
}

// userReader adapts fakeStore to the AccountReader interface, whose GetByID
// signature collides with the profile one.
type userReader struct{ s *fakeStore }

func (r userReader) GetByID(id uint) (*models.User, error) { return r.s.GetUserByID(id) }
