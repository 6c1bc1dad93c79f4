package repositories

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/pocketbase/pocketbase/core"

	"barkmap/entities"
	"barkmap/interfaces"
	"barkmap/internal/mercator"
	"barkmap/internal/vectortile"
)

const businessRecordsCollection = "business_records"

// tileIndexField names the column that holds a record's "x/y" tile
// coordinate at a given indexed zoom level, mirroring the per-zoom GSI
// columns the original DynamoDB schema used for the same lookup.
func tileIndexField(z int) string {
	return fmt.Sprintf("tileIndexZ%d", z)
}

// PocketBaseRecordRepository implements interfaces.RecordRepository using
// PocketBase's core.App record API.
type PocketBaseRecordRepository struct {
	app               core.App
	indexedZoomLevels []int
}

// NewPocketBaseRecordRepository creates a new PocketBase-backed record
// repository. indexedZoomLevels must match the zoom levels the
// business_records collection was provisioned with tile index columns for.
func NewPocketBaseRecordRepository(app core.App, indexedZoomLevels []int) *PocketBaseRecordRepository {
	return &PocketBaseRecordRepository{app: app, indexedZoomLevels: indexedZoomLevels}
}

// Create implements interfaces.RecordRepository.
func (r *PocketBaseRecordRepository) Create(ctx context.Context, record *entities.BusinessRecord) error {
	collection, err := r.app.FindCachedCollectionByNameOrId(businessRecordsCollection)
	if err != nil {
		return fmt.Errorf("find %s collection: %w", businessRecordsCollection, err)
	}

	rec := core.NewRecord(collection)
	if record.DogID != "" {
		rec.Set("dogId", record.DogID)
	}
	rec.Set("businessType", string(record.BusinessType))
	rec.Set("longitude", record.Location.Lon())
	rec.Set("latitude", record.Location.Lat())
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	rec.Set("timestamp", record.Timestamp.Unix())

	lon, lat := record.Location.Lon(), record.Location.Lat()
	for _, z := range r.indexedZoomLevels {
		x := int(math.Floor(mercator.XFromLongitude(lon, uint32(z))))
		y := int(math.Floor(mercator.YFromLatitude(lat, uint32(z))))
		rec.Set(tileIndexField(z), fmt.Sprintf("%d/%d", x, y))
	}

	if err := r.app.Save(rec); err != nil {
		return fmt.Errorf("save business record: %w", err)
	}

	record.ID = rec.Id
	return nil
}

// Delete implements interfaces.RecordRepository.
func (r *PocketBaseRecordRepository) Delete(ctx context.Context, recordID string) error {
	rec, err := r.app.FindRecordById(businessRecordsCollection, recordID)
	if err != nil {
		return fmt.Errorf("find business record %s: %w", recordID, err)
	}
	if err := r.app.Delete(rec); err != nil {
		return fmt.Errorf("delete business record %s: %w", recordID, err)
	}
	return nil
}

// QueryByTile implements interfaces.RecordRepository. coords.Z must be one of
// the repository's indexed zoom levels.
func (r *PocketBaseRecordRepository) QueryByTile(ctx context.Context, coords entities.TileCoordinates, maxRecords int) ([]entities.BusinessRecord, error) {
	field := tileIndexField(coords.Z)
	tileValue := fmt.Sprintf("%d/%d", coords.X, coords.Y)

	records, err := r.app.FindRecordsByFilter(
		businessRecordsCollection,
		fmt.Sprintf("%s = {:tile}", field),
		"-timestamp",
		maxRecords,
		0,
		map[string]any{"tile": tileValue},
	)
	if err != nil {
		return nil, fmt.Errorf("query business records by tile: %w", err)
	}

	return recordsToBusinessRecords(records), nil
}

// QueryByDog implements interfaces.RecordRepository.
func (r *PocketBaseRecordRepository) QueryByDog(ctx context.Context, dogID string, maxRecords int) ([]entities.BusinessRecord, error) {
	records, err := r.app.FindRecordsByFilter(
		businessRecordsCollection,
		"dogId = {:dogId}",
		"-timestamp",
		maxRecords,
		0,
		map[string]any{"dogId": dogID},
	)
	if err != nil {
		return nil, fmt.Errorf("query business records by dog: %w", err)
	}

	return recordsToBusinessRecords(records), nil
}

func recordsToBusinessRecords(records []*core.Record) []entities.BusinessRecord {
	out := make([]entities.BusinessRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, entities.BusinessRecord{
			ID:           rec.Id,
			DogID:        rec.GetString("dogId"),
			BusinessType: vectortile.BusinessType(rec.GetString("businessType")),
			Location:     orb.Point{rec.GetFloat("longitude"), rec.GetFloat("latitude")},
			Timestamp:    time.Unix(int64(rec.GetFloat("timestamp")), 0).UTC(),
		})
	}
	return out
}

// Compile-time check that PocketBaseRecordRepository implements
// interfaces.RecordRepository.
var _ interfaces.RecordRepository = (*PocketBaseRecordRepository)(nil)
