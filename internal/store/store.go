// Package store holds the car record store contract and its in-memory
// implementation.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"car-api-go/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no car matches the requested id
var ErrNotFound = errors.New("car not found")

// DuplicateCarError is raised when appending a car whose id already exists
type DuplicateCarError struct {
	CarID string
}

func (e *DuplicateCarError) Error() string {
	return fmt.Sprintf("Car with ID '%s' already exists", e.CarID)
}

// CarStore is the record store the controller reads and mutates.
// Implementations own their records; callers receive copies.
type CarStore interface {
	List(ctx context.Context) ([]models.Car, error)
	FindByID(ctx context.Context, id string) (*models.Car, error)
	Append(ctx context.Context, car *models.Car) error
	Update(ctx context.Context, id string, patch models.CarPatch) (*models.Car, error)
	RemoveByID(ctx context.Context, id string) error
	Reset(ctx context.Context) error
}

// NewID generates a car identifier
func NewID() string {
	return uuid.NewString()
}

// MemoryStore keeps cars in an ordered slice. Lookups are linear scans,
// which is fine for the small collections it is meant for.
type MemoryStore struct {
	mu   sync.RWMutex
	cars []models.Car
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cars: make([]models.Car, 0)}
}

// NewSeededMemoryStore returns a store holding the fixture cars
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	s.cars = Fixtures()
	return s
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Car, len(s.cars))
	copy(result, s.cars)
	return result, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*models.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	car := s.cars[i]
	return &car, nil
}

// Append assigns an id when the car has none and adds it at the end
func (s *MemoryStore) Append(ctx context.Context, car *models.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if car.ID == "" {
		car.ID = NewID()
	}
	if s.indexOf(car.ID) >= 0 {
		return &DuplicateCarError{CarID: car.ID}
	}
	s.cars = append(s.cars, *car)
	return nil
}

// Update merges patch into the stored car in place
func (s *MemoryStore) Update(ctx context.Context, id string, patch models.CarPatch) (*models.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	updated := s.cars[i]
	if err := patch.Apply(&updated); err != nil {
		return nil, err
	}
	s.cars[i] = updated
	return &updated, nil
}

func (s *MemoryStore) RemoveByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.cars = append(s.cars[:i], s.cars[i+1:]...)
	return nil
}

// Reset replaces the contents with the fixture cars
func (s *MemoryStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cars = Fixtures()
	return nil
}

// Len returns the number of stored cars
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cars)
}

// indexOf must be called with mu held
func (s *MemoryStore) indexOf(id string) int {
	for i := range s.cars {
		if s.cars[i].ID == id {
			return i
		}
	}
	return -1
}
