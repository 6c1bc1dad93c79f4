// Package vectortile implements the MVT tile compiler: a buffer that
// accumulates business records for one tile, and an assembler that
// converts a finalized buffer into a serialized Mapbox Vector Tile.
package vectortile

import "barkmap/internal/tilegrid"

// BusinessType is the kind of event a record represents.
type BusinessType string

// Wire tokens for BusinessType, per the business record data model.
const (
	Pee BusinessType = "pee"
	Poo BusinessType = "poo"
)

// Record is one point-in-time business event: a dog-attributed location
// with a type and a timestamp. DogID is nil when the event has been
// anonymized and carries no dog attribution.
type Record struct {
	RecordID     string
	DogID        *string
	BusinessType BusinessType
	Timestamp    int64
	Lon, Lat     float64
}

// Buffer accumulates records for a single tile build. It enforces
// containment and record-ID uniqueness and tallies property-value
// frequencies as records are appended. A Buffer is not safe for concurrent
// use and is meant to be built, appended to, and finalized once on a
// single goroutine.
type Buffer struct {
	coord tilegrid.Coordinate
	box   tilegrid.Box

	records   []Record
	recordIDs map[string]struct{}

	stringValues map[string]int
	i64Values    map[int64]int

	finalized bool
}

// NewBuffer constructs an empty buffer bound to a tile coordinate.
func NewBuffer(coord tilegrid.Coordinate) *Buffer {
	return &Buffer{
		coord:        coord,
		box:          tilegrid.NewBox(coord),
		recordIDs:    make(map[string]struct{}),
		stringValues: make(map[string]int),
		i64Values:    make(map[int64]int),
	}
}

// Coordinate returns the tile coordinate this buffer was built for.
func (b *Buffer) Coordinate() tilegrid.Coordinate {
	return b.coord
}

// Len returns the number of records currently accepted.
func (b *Buffer) Len() int {
	return len(b.records)
}

// Append attempts to insert a record into the buffer. It returns
// ErrOutsideOfTile if the record's location is not inside the tile's
// half-open box, or a *DuplicateRecordIDError if the record ID was already
// accepted. In either failure case the buffer is left unchanged.
func (b *Buffer) Append(r Record) error {
	if !b.box.Contains(r.Lon, r.Lat) {
		return ErrOutsideOfTile
	}
	if _, exists := b.recordIDs[r.RecordID]; exists {
		return &DuplicateRecordIDError{RecordID: r.RecordID}
	}

	b.recordIDs[r.RecordID] = struct{}{}
	if r.DogID != nil {
		b.addStringValue(*r.DogID)
	}
	b.addStringValue(string(r.BusinessType))
	b.addI64Value(r.Timestamp)
	b.records = append(b.records, r)
	return nil
}

func (b *Buffer) addStringValue(v string) {
	b.stringValues[v]++
}

func (b *Buffer) addI64Value(v int64) {
	b.i64Values[v]++
}
