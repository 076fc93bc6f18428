package service

import (
	"context"
	"errors"

	"MedDesk/internal/cache"
	dom "MedDesk/internal/domain"
	"MedDesk/internal/repo"
	"MedDesk/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var ErrEmailTaken = errors.New("email already exists")

// DoctorService handles doctor CRUD. The list read is public and cached;
// concurrent cache misses are collapsed with singleflight.
type DoctorService struct {
	repo  repo.DoctorRepo
	cache *cache.DoctorCache
	sf    singleflight.Group
}

// NewDoctorService creates a DoctorService. If c is nil, caching is disabled.
func NewDoctorService(r repo.DoctorRepo, c *cache.DoctorCache) *DoctorService {
	return &DoctorService{repo: r, cache: c}
}

func (s *DoctorService) Create(ctx context.Context, d dom.Doctor) (dom.Doctor, error) {
	d.ID = uuid.NewString()
	out, err := s.repo.Create(ctx, d)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Doctor{}, ErrEmailTaken
		}
		return dom.Doctor{}, err
	}
	s.invalidateCache(ctx)
	return out, nil
}

func (s *DoctorService) List(ctx context.Context) ([]dom.Doctor, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Doctor), nil
	}
	return s.repo.List(ctx)
}

func (s *DoctorService) GetByID(ctx context.Context, id string) (dom.Doctor, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Doctor{}, ErrNotFound
		}
		return dom.Doctor{}, err
	}
	return d, nil
}

func (s *DoctorService) Update(ctx context.Context, id string, d dom.Doctor) (dom.Doctor, error) {
	out, err := s.repo.Update(ctx, id, d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Doctor{}, ErrNotFound
		}
		if utils.IsPGUniqueViolation(err) {
			return dom.Doctor{}, ErrEmailTaken
		}
		return dom.Doctor{}, err
	}
	s.invalidateCache(ctx)
	return out, nil
}

// Delete removes the doctor and, in the same transaction, every
// appointment that references it.
func (s *DoctorService) Delete(ctx context.Context, id string) error {
	err := s.repo.DeleteCascade(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *DoctorService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
