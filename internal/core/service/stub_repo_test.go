package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.ProfessionalUser
	nextID  int
	edits   int   // number of successful Edit calls
	findErr error // if set, list/lookups return this error

	// afterGet runs once GetByID has copied the record, before it returns.
	afterGet func(id string)
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.ProfessionalUser)}
}

func cloneUser(u *domain.ProfessionalUser) *domain.ProfessionalUser {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// seed stores u directly, bypassing Create validation.
func (r *stubUserRepo) seed(u *domain.ProfessionalUser) *domain.ProfessionalUser {
	if u.ID == "" {
		r.nextID++
		u.ID = fmt.Sprintf("u-%d", r.nextID)
	}
	r.byID[u.ID] = cloneUser(u)
	return cloneUser(u)
}

func (r *stubUserRepo) sorted(keep func(*domain.ProfessionalUser) bool) []*domain.ProfessionalUser {
	out := []*domain.ProfessionalUser{}
	for _, u := range r.byID {
		if keep(u) {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubUserRepo) GetAll(_ context.Context) ([]*domain.ProfessionalUser, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.sorted(func(u *domain.ProfessionalUser) bool { return u.Active }), nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.ProfessionalUser, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := cloneUser(u)
	if r.afterGet != nil {
		r.afterGet(id)
	}
	return out, nil
}

func (r *stubUserRepo) FindByCategory(_ context.Context, categoryID int) ([]*domain.ProfessionalUser, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.sorted(func(u *domain.ProfessionalUser) bool { return u.Active && u.CategoryID == categoryID }), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.ProfessionalUser, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ValidateEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.ProfessionalUser) (*domain.ProfessionalUser, error) {
	if ok, _ := r.ValidateEmail(ctx, user.Email); ok {
		return nil, domain.ErrUserExists
	}
	return r.seed(cloneUser(user)), nil
}

func (r *stubUserRepo) Edit(_ context.Context, user *domain.ProfessionalUser) error {
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.byID[user.ID] = cloneUser(user)
	r.edits++
	return nil
}

func (r *stubUserRepo) Remove(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) ChangeStateToFalse(_ context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = false
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

// ---------------------------------------------------------------------------
// Stub cache
// ---------------------------------------------------------------------------

type stubCache struct {
	entries     map[string]*domain.ProfessionalUser
	getErr      error
	invalidated []string
	guarded     map[string]bool
}

func newStubCache() *stubCache {
	return &stubCache{
		entries: make(map[string]*domain.ProfessionalUser),
		guarded: make(map[string]bool),
	}
}

func (c *stubCache) Get(_ context.Context, id string) (*domain.ProfessionalUser, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	u, ok := c.entries[id]
	return cloneUser(u), ok, nil
}

func (c *stubCache) Set(_ context.Context, u *domain.ProfessionalUser) error {
	if c.guarded[u.ID] {
		return nil
	}
	c.entries[u.ID] = cloneUser(u)
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, id string) error {
	delete(c.entries, id)
	c.guarded[id] = true
	c.invalidated = append(c.invalidated, id)
	return nil
}
