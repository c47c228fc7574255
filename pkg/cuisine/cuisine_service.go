package cuisine

import (
	"context"
	"sync"

	"cooktok/entities"
)

type (
	// CuisineService keeps a plain list snapshot, reloaded in full after
	// every mutation. No optimistic updates; a failed store call returns
	// the error to the caller untouched.
	CuisineService interface {
		Cuisines() []entities.Cuisine
		LoadCuisines(ctx context.Context) error
		AddCuisine(ctx context.Context, name string) error
		UpdateCuisine(ctx context.Context, cuisine entities.Cuisine) error
		DeleteCuisine(ctx context.Context, cuisine entities.Cuisine) error
	}

	cuisineService struct {
		cuisineRepository CuisineRepository

		mu       sync.RWMutex
		cuisines []entities.Cuisine
	}
)

func NewCuisineService(cuisineRepository CuisineRepository) CuisineService {
	return &cuisineService{cuisineRepository: cuisineRepository}
}

func (s *cuisineService) Cuisines() []entities.Cuisine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Cuisine, len(s.cuisines))
	copy(out, s.cuisines)
	return out
}

func (s *cuisineService) LoadCuisines(ctx context.Context) error {
	cuisines, err := s.cuisineRepository.GetAllCuisines(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cuisines = cuisines
	s.mu.Unlock()
	return nil
}

func (s *cuisineService) AddCuisine(ctx context.Context, name string) error {
	if err := s.cuisineRepository.InsertCuisine(ctx, &entities.Cuisine{Name: name}); err != nil {
		return err
	}
	return s.LoadCuisines(ctx)
}

func (s *cuisineService) UpdateCuisine(ctx context.Context, cuisine entities.Cuisine) error {
	if err := s.cuisineRepository.UpdateCuisine(ctx, &cuisine); err != nil {
		return err
	}
	return s.LoadCuisines(ctx)
}

func (s *cuisineService) DeleteCuisine(ctx context.Context, cuisine entities.Cuisine) error {
	if err := s.cuisineRepository.DeleteCuisine(ctx, &cuisine); err != nil {
		return err
	}
	return s.LoadCuisines(ctx)
}
