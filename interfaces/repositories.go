package interfaces

import (
	"context"

	"barkmap/entities"
)

// RecordRepository stores and queries business records.
type RecordRepository interface {
	Create(ctx context.Context, record *entities.BusinessRecord) error
	Delete(ctx context.Context, recordID string) error
	// QueryByTile returns up to maxRecords records whose indexed tile
	// coordinate matches coords, newest first.
	QueryByTile(ctx context.Context, coords entities.TileCoordinates, maxRecords int) ([]entities.BusinessRecord, error)
	QueryByDog(ctx context.Context, dogID string, maxRecords int) ([]entities.BusinessRecord, error)
}

// DogRepository stores and queries registered dogs.
type DogRepository interface {
	Create(ctx context.Context, dog *entities.Dog) error
	Get(ctx context.Context, dogID string) (*entities.Dog, error)
}
