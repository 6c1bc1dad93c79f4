package services

import (
	"context"
	"fmt"

	"barkmap/entities"
	"barkmap/interfaces"
	"barkmap/validation"
)

// DogService orchestrates dog registration and lookup.
type DogService struct {
	dogs      interfaces.DogRepository
	validator *validation.DogValidator
}

// NewDogService creates a new dog service.
func NewDogService(dogs interfaces.DogRepository) *DogService {
	return &DogService{
		dogs:      dogs,
		validator: validation.NewDogValidator(),
	}
}

// RegisterDog validates and stores a new dog.
func (s *DogService) RegisterDog(ctx context.Context, name, ownerID string) (*entities.Dog, error) {
	if errs := s.validator.ValidateDogCreation(name); errs.HasErrors() {
		return nil, errs
	}

	dog := &entities.Dog{Name: name, OwnerID: ownerID}
	if err := s.dogs.Create(ctx, dog); err != nil {
		return nil, fmt.Errorf("create dog: %w", err)
	}
	return dog, nil
}

// GetDog returns a registered dog by ID.
func (s *DogService) GetDog(ctx context.Context, dogID string) (*entities.Dog, error) {
	return s.dogs.Get(ctx, dogID)
}
