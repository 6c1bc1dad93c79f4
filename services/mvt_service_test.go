package services

import (
	"context"
	"testing"
	"time"

	"github.com/paulmach/orb"

	"barkmap/entities"
	"barkmap/internal/config"
	"barkmap/internal/vectortile"
)

// fakeRecordRepository serves QueryByTile from an in-memory slice, keyed by
// the exact (z,x,y) a caller asks for - mirroring the per-indexed-zoom
// lookup the real PocketBase repository performs.
type fakeRecordRepository struct {
	byTile map[entities.TileCoordinates][]entities.BusinessRecord
}

func (f *fakeRecordRepository) Create(ctx context.Context, record *entities.BusinessRecord) error {
	return nil
}
func (f *fakeRecordRepository) Delete(ctx context.Context, recordID string) error { return nil }
func (f *fakeRecordRepository) QueryByTile(ctx context.Context, coords entities.TileCoordinates, maxRecords int) ([]entities.BusinessRecord, error) {
	return f.byTile[coords], nil
}
func (f *fakeRecordRepository) QueryByDog(ctx context.Context, dogID string, maxRecords int) ([]entities.BusinessRecord, error) {
	return nil, nil
}

func TestMVTService_GetTile_CachesCompiledTiles(t *testing.T) {
	coords := entities.TileCoordinates{Z: 14, X: 8578, Y: 5735}
	record := entities.BusinessRecord{
		ID:           "rec-1",
		BusinessType: vectortile.Pee,
		Location:     orb.Point{8.5, 47.4},
		Timestamp:    time.Now(),
	}

	repo := &fakeRecordRepository{
		byTile: map[entities.TileCoordinates][]entities.BusinessRecord{
			coords: {record},
		},
	}

	svc := NewMVTService(repo, config.TileConfig{
		IndexedZoomLevels: []int{0, 14},
		MaxRecordsPerTile: 200,
		MinZoom:           0,
		MaxZoom:           22,
	})

	data, err := svc.GetTile(context.Background(), coords)
	if err != nil {
		t.Fatalf("GetTile() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty tile bytes for a tile with one record")
	}

	cached, err := svc.GetTile(context.Background(), coords)
	if err != nil {
		t.Fatalf("GetTile() (cached) error = %v", err)
	}
	if string(cached) != string(data) {
		t.Errorf("cached tile bytes differ from the freshly compiled tile")
	}
}

func TestMVTService_ZoomOutToIndexedLevel(t *testing.T) {
	svc := NewMVTService(&fakeRecordRepository{byTile: map[entities.TileCoordinates][]entities.BusinessRecord{}}, config.TileConfig{
		IndexedZoomLevels: []int{0, 6, 10, 14},
		MaxRecordsPerTile: 200,
	})

	tests := []struct {
		requested entities.TileCoordinates
		want      entities.TileCoordinates
	}{
		{entities.TileCoordinates{Z: 0, X: 0, Y: 0}, entities.TileCoordinates{Z: 0, X: 0, Y: 0}},
		{entities.TileCoordinates{Z: 5, X: 10, Y: 20}, entities.TileCoordinates{Z: 0, X: 0, Y: 0}},
		{entities.TileCoordinates{Z: 14, X: 100, Y: 200}, entities.TileCoordinates{Z: 14, X: 100, Y: 200}},
		{entities.TileCoordinates{Z: 20, X: 1 << 20, Y: 2 << 20}, entities.TileCoordinates{Z: 14, X: 1 << 14, Y: 2 << 14}},
	}

	for _, tt := range tests {
		got := svc.zoomOutToIndexedLevel(tt.requested)
		if got != tt.want {
			t.Errorf("zoomOutToIndexedLevel(%+v) = %+v, want %+v", tt.requested, got, tt.want)
		}
	}
}

func TestMVTService_EmptyTileCompilesWithoutError(t *testing.T) {
	repo := &fakeRecordRepository{byTile: map[entities.TileCoordinates][]entities.BusinessRecord{}}
	svc := NewMVTService(repo, config.TileConfig{IndexedZoomLevels: []int{0}, MaxRecordsPerTile: 200})

	if _, err := svc.GetTile(context.Background(), entities.TileCoordinates{Z: 10, X: 1, Y: 1}); err != nil {
		t.Fatalf("GetTile() error = %v", err)
	}
}
