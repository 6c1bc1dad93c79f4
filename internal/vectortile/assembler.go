package vectortile

import (
	"sort"

	"barkmap/internal/featureid"
	"barkmap/internal/tilegrid"
)

// Key indices for business record properties, in the fixed order the
// layer's keys table is emitted.
const (
	keyRecordID     = 0
	keyDogID        = 1
	keyBusinessType = 2
	keyTimestamp    = 3
)

var layerKeyNames = []string{"recordId", "dogId", "businessType", "timestamp"}

// valueCount pairs one property value with how many records reference it.
// Exactly one of str/i64 is set.
type valueCount struct {
	str   *string
	i64   *int64
	count int
}

// Finalize assembles the buffer's accumulated records into a single-layer
// Tile. Values are interned into one shared index space: string and int64
// values are merged and sorted by descending reference frequency (ties put
// string values before int64 values, then order by ascending value, so the
// result does not depend on map iteration order), then record IDs are appended
// to the end of the table, excluded from the frequency tally since every
// record ID occurs exactly once by construction.
//
// Finalize consumes the buffer: it panics if called more than once, the
// same way the Rust original's by-value From<BusinessRecordBuffer> for Tile
// conversion makes a second use a compile error.
func (b *Buffer) Finalize() *Tile {
	if b.finalized {
		panic("vectortile: Finalize called more than once on the same Buffer")
	}
	b.finalized = true

	entries := make([]valueCount, 0, len(b.stringValues)+len(b.i64Values))
	for s, n := range b.stringValues {
		entries = append(entries, valueCount{str: &s, count: n})
	}
	for i, n := range b.i64Values {
		entries = append(entries, valueCount{i64: &i, count: n})
	}
	sort.SliceStable(entries, func(a, c int) bool {
		ea, ec := entries[a], entries[c]
		if ea.count != ec.count {
			return ea.count > ec.count
		}
		if (ea.str != nil) != (ec.str != nil) {
			return ea.str != nil
		}
		if ea.str != nil {
			return *ea.str < *ec.str
		}
		return *ea.i64 < *ec.i64
	})

	recordIDOrder := make([]string, 0, len(b.records))
	seen := make(map[string]struct{}, len(b.records))
	for _, r := range b.records {
		if _, ok := seen[r.RecordID]; !ok {
			seen[r.RecordID] = struct{}{}
			recordIDOrder = append(recordIDOrder, r.RecordID)
		}
	}

	values := make([]Value, 0, len(entries)+len(recordIDOrder))
	stringIndex := make(map[string]uint32, len(entries)+len(recordIDOrder))
	i64Index := make(map[int64]uint32, len(entries))
	for _, e := range entries {
		idx := uint32(len(values))
		if e.str != nil {
			stringIndex[*e.str] = idx
			values = append(values, Value{StringValue: e.str})
		} else {
			i64Index[*e.i64] = idx
			values = append(values, Value{IntValue: e.i64})
		}
	}
	for i := range recordIDOrder {
		id := recordIDOrder[i]
		stringIndex[id] = uint32(len(values))
		values = append(values, Value{StringValue: &recordIDOrder[i]})
	}

	features := make([]Feature, 0, len(b.records))
	for i, r := range b.records {
		id := featureid.Pack(uint64(i), b.coord.Z, b.coord.X, b.coord.Y)
		u := tilegrid.U(r.Lon, b.coord)
		v := tilegrid.V(r.Lat, b.coord)

		tags := []uint32{keyRecordID, stringIndex[r.RecordID]}
		if r.DogID != nil {
			tags = append(tags, keyDogID, stringIndex[*r.DogID])
		}
		tags = append(tags,
			keyBusinessType, stringIndex[string(r.BusinessType)],
			keyTimestamp, i64Index[r.Timestamp],
		)

		features = append(features, Feature{
			ID:       id,
			Tags:     tags,
			Type:     GeomPoint,
			Geometry: []uint32{9, zigzag(int64(u)), zigzag(int64(v))},
		})
	}

	var keys []string
	if len(features) > 0 {
		keys = layerKeyNames
	}

	return &Tile{
		Layers: []Layer{
			{
				Version:  2,
				Name:     "business_records",
				Features: features,
				Keys:     keys,
				Values:   values,
				Extent:   tilegrid.Extent,
			},
		},
	}
}
