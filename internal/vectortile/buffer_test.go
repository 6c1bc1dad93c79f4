package vectortile

import (
	"errors"
	"testing"

	"barkmap/internal/tilegrid"
)

const (
	tokyoLon, tokyoLat             = 139.7670506677, 35.6814709332
	pittsburghLon, pittsburghLat   = -80.0078430744, 40.4417106826
	buenosAiresLon, buenosAiresLat = -58.381645119, -34.6035270547
	cairnsLon, cairnsLat           = 145.9737840892, -16.7596021497
)

func strPtr(s string) *string { return &s }

func TestBufferContainsLocation(t *testing.T) {
	cases := []struct {
		coord   tilegrid.Coordinate
		tokyo   bool
		pitt    bool
		buenos  bool
		cairns  bool
	}{
		{tilegrid.Coordinate{Z: 0, X: 0, Y: 0}, true, true, true, true},
		{tilegrid.Coordinate{Z: 1, X: 1, Y: 0}, true, false, false, false},
		{tilegrid.Coordinate{Z: 2, X: 1, Y: 2}, false, false, true, false},
		{tilegrid.Coordinate{Z: 10, X: 927, Y: 560}, false, false, false, true},
		{tilegrid.Coordinate{Z: 22, X: 1164993, Y: 1581136}, false, true, false, false},
		{tilegrid.Coordinate{Z: 16, X: 32768, Y: 32768}, false, false, false, false},
	}
	for _, c := range cases {
		box := tilegrid.NewBox(c.coord)
		if got := box.Contains(tokyoLon, tokyoLat); got != c.tokyo {
			t.Errorf("%+v: contains(tokyo) = %v, want %v", c.coord, got, c.tokyo)
		}
		if got := box.Contains(pittsburghLon, pittsburghLat); got != c.pitt {
			t.Errorf("%+v: contains(pittsburgh) = %v, want %v", c.coord, got, c.pitt)
		}
		if got := box.Contains(buenosAiresLon, buenosAiresLat); got != c.buenos {
			t.Errorf("%+v: contains(buenosAires) = %v, want %v", c.coord, got, c.buenos)
		}
		if got := box.Contains(cairnsLon, cairnsLat); got != c.cairns {
			t.Errorf("%+v: contains(cairns) = %v, want %v", c.coord, got, c.cairns)
		}
	}
}

func TestBufferAppendOK(t *testing.T) {
	b := NewBuffer(tilegrid.Coordinate{Z: 0, X: 0, Y: 0})
	err := b.Append(Record{
		RecordID: "test_record_1", DogID: strPtr("dog_1"), BusinessType: Pee,
		Lon: tokyoLon, Lat: tokyoLat, Timestamp: 1_755_317_141,
	})
	if err != nil {
		t.Fatalf("first append: %v", err)
	}
	err = b.Append(Record{
		RecordID: "test_record_2", DogID: strPtr("dog_2"), BusinessType: Poo,
		Lon: pittsburghLon, Lat: pittsburghLat, Timestamp: 1_755_317_142,
	})
	if err != nil {
		t.Fatalf("second append: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestBufferAppendOutsideOfTile(t *testing.T) {
	b := NewBuffer(tilegrid.Coordinate{Z: 1, X: 1, Y: 0})
	if err := b.Append(Record{
		RecordID: "test_record_1", DogID: strPtr("dog_1"), BusinessType: Pee,
		Lon: tokyoLon, Lat: tokyoLat, Timestamp: 1_755_317_141,
	}); err != nil {
		t.Fatalf("expected tokyo to be inside tile (1,1,0): %v", err)
	}
	err := b.Append(Record{
		RecordID: "test_record_2", DogID: strPtr("dog_2"), BusinessType: Poo,
		Lon: pittsburghLon, Lat: pittsburghLat, Timestamp: 1_755_317_142,
	})
	if !errors.Is(err, ErrOutsideOfTile) {
		t.Fatalf("err = %v, want ErrOutsideOfTile", err)
	}
}

func TestBufferAppendDuplicateRecordID(t *testing.T) {
	b := NewBuffer(tilegrid.Coordinate{Z: 0, X: 0, Y: 0})
	if err := b.Append(Record{
		RecordID: "duplicate_record_id", DogID: strPtr("dog_1"), BusinessType: Pee,
		Lon: tokyoLon, Lat: tokyoLat, Timestamp: 1_755_317_141,
	}); err != nil {
		t.Fatalf("first append: %v", err)
	}
	err := b.Append(Record{
		RecordID: "duplicate_record_id", DogID: strPtr("dog_2"), BusinessType: Poo,
		Lon: pittsburghLon, Lat: pittsburghLat, Timestamp: 1_755_317_142,
	})
	var dup *DuplicateRecordIDError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want *DuplicateRecordIDError", err)
	}
	if dup.RecordID != "duplicate_record_id" {
		t.Errorf("dup.RecordID = %q, want %q", dup.RecordID, "duplicate_record_id")
	}
}
