package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	domainRepo "github.com/swipelite/swipelite-api/internal/domain/repository"
	"github.com/swipelite/swipelite-api/internal/infrastructure/kvstore"
)

type profileRepository struct {
	store kvstore.Store
	c     *collection[entity.BusinessProfile]
}

// NewProfileRepository hydrates the profile collection. The active profile id
// lives under its own key; when it is missing or unreadable the first seeded
// profile becomes active.
func NewProfileRepository(ctx context.Context, store kvstore.Store, seed []entity.BusinessProfile) (domainRepo.ProfileRepository, error) {
	c, err := newCollection(ctx, store, kvstore.KeyProfiles, seed)
	if err != nil {
		return nil, err
	}
	r := &profileRepository{store: store, c: c}

	if _, err := r.GetActiveID(ctx); errors.Is(err, kvstore.ErrNotFound) {
		profiles := c.snapshot()
		if len(profiles) > 0 {
			if err := r.SetActiveID(ctx, profiles[0].ID); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	return r.c.mutate(ctx, func(items []entity.BusinessProfile) []entity.BusinessProfile {
		return append(items, *profile)
	})
}

func (r *profileRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	profile, _ := r.c.find(func(p entity.BusinessProfile) bool { return p.ID == id })
	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	profile.UpdatedAt = time.Now().UTC()
	return r.c.mutate(ctx, func(items []entity.BusinessProfile) []entity.BusinessProfile {
		for i := range items {
			if items[i].ID == profile.ID {
				items[i] = *profile
			}
		}
		return items
	})
}

func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.c.mutate(ctx, func(items []entity.BusinessProfile) []entity.BusinessProfile {
		out := items[:0]
		for _, p := range items {
			if p.ID != id {
				out = append(out, p)
			}
		}
		return out
	})
}

func (r *profileRepository) List(_ context.Context) ([]entity.BusinessProfile, error) {
	return r.c.snapshot(), nil
}

func (r *profileRepository) GetActiveID(ctx context.Context) (uuid.UUID, error) {
	data, err := r.store.Get(ctx, kvstore.KeyActiveProfileID)
	if err != nil {
		return uuid.Nil, err
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return uuid.Nil, kvstore.ErrNotFound
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, kvstore.ErrNotFound
	}
	return id, nil
}

func (r *profileRepository) SetActiveID(ctx context.Context, id uuid.UUID) error {
	data, err := json.Marshal(id.String())
	if err != nil {
		return err
	}
	return r.store.Put(ctx, kvstore.KeyActiveProfileID, data)
}
