package entities

import (
	"time"

	"github.com/paulmach/orb"

	"barkmap/internal/vectortile"
)

// BusinessRecord is a single dog business event: who (optionally), what kind,
// where and when. It mirrors the Rust original's BusinessRecord but drops the
// friend-of/owner authorization fields entirely (authorization is out of
// scope here).
type BusinessRecord struct {
	ID           string                  `json:"id"`
	DogID        string                  `json:"dogId,omitempty"`
	BusinessType vectortile.BusinessType `json:"businessType"`
	Location     orb.Point               `json:"location"`
	Timestamp    time.Time               `json:"timestamp"`
}

// ToVectortileRecord converts the storage-facing record into the plain
// lon/lat form the tile compiler's Buffer.Append expects.
func (r BusinessRecord) ToVectortileRecord() vectortile.Record {
	var dogID *string
	if r.DogID != "" {
		id := r.DogID
		dogID = &id
	}
	return vectortile.Record{
		RecordID:     r.ID,
		DogID:        dogID,
		BusinessType: r.BusinessType,
		Timestamp:    r.Timestamp.Unix(),
		Lon:          r.Location.Lon(),
		Lat:          r.Location.Lat(),
	}
}

// TileCoordinates identifies a single map tile.
type TileCoordinates struct {
	Z int
	X int
	Y int
}

// BoundingBox is a geographic bounding box in degrees.
type BoundingBox struct {
	North float64
	South float64
	East  float64
	West  float64
}
