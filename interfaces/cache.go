package interfaces

import (
	"context"

	"barkmap/entities"
)

// MVTCache serves compiled Mapbox Vector Tiles, generating and caching them
// lazily on first request for a given tile coordinate.
type MVTCache interface {
	GetTile(ctx context.Context, coords entities.TileCoordinates) ([]byte, error)
	GetMinZoom() int
	GetMaxZoom() int
	InvalidateAll()
}

// CacheService is the narrower surface event handlers invoke to invalidate
// cached tiles when the underlying record data changes.
type CacheService interface {
	InvalidateMVTCache(ctx context.Context) error
}
