package repositories

import (
	"context"
	"fmt"

	"github.com/pocketbase/pocketbase/core"

	"barkmap/entities"
	"barkmap/interfaces"
)

const dogsCollection = "dogs"

// PocketBaseDogRepository implements interfaces.DogRepository using
// PocketBase's core.App record API.
type PocketBaseDogRepository struct {
	app core.App
}

// NewPocketBaseDogRepository creates a new PocketBase-backed dog repository.
func NewPocketBaseDogRepository(app core.App) *PocketBaseDogRepository {
	return &PocketBaseDogRepository{app: app}
}

// Create implements interfaces.DogRepository.
func (r *PocketBaseDogRepository) Create(ctx context.Context, dog *entities.Dog) error {
	collection, err := r.app.FindCachedCollectionByNameOrId(dogsCollection)
	if err != nil {
		return fmt.Errorf("find %s collection: %w", dogsCollection, err)
	}

	rec := core.NewRecord(collection)
	rec.Set("name", dog.Name)
	if dog.OwnerID != "" {
		rec.Set("ownerId", dog.OwnerID)
	}

	if err := r.app.Save(rec); err != nil {
		return fmt.Errorf("save dog: %w", err)
	}

	dog.ID = rec.Id
	return nil
}

// Get implements interfaces.DogRepository.
func (r *PocketBaseDogRepository) Get(ctx context.Context, dogID string) (*entities.Dog, error) {
	rec, err := r.app.FindRecordById(dogsCollection, dogID)
	if err != nil {
		return nil, fmt.Errorf("find dog %s: %w", dogID, err)
	}

	return &entities.Dog{
		ID:      rec.Id,
		Name:    rec.GetString("name"),
		OwnerID: rec.GetString("ownerId"),
	}, nil
}

// Compile-time check that PocketBaseDogRepository implements
// interfaces.DogRepository.
var _ interfaces.DogRepository = (*PocketBaseDogRepository)(nil)
