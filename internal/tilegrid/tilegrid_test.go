package tilegrid

import "testing"

const (
	tokyoLon, tokyoLat               = 139.7670506677, 35.6814709332
	pittsburghLon, pittsburghLat     = -80.0078430744, 40.4417106826
	buenosAiresLon, buenosAiresLat   = -58.381645119, -34.6035270547
	cairnsLon, cairnsLat             = 145.9737840892, -16.7596021497
)

func TestContainsWorldTile(t *testing.T) {
	box := NewBox(Coordinate{Z: 0, X: 0, Y: 0})
	for _, p := range [][2]float64{
		{tokyoLon, tokyoLat},
		{pittsburghLon, pittsburghLat},
		{buenosAiresLon, buenosAiresLat},
		{cairnsLon, cairnsLat},
	} {
		if !box.Contains(p[0], p[1]) {
			t.Errorf("expected world tile to contain (%v, %v)", p[0], p[1])
		}
	}
}

func TestContainsNarrowsWithZoom(t *testing.T) {
	box := NewBox(Coordinate{Z: 1, X: 1, Y: 0})
	if !box.Contains(tokyoLon, tokyoLat) {
		t.Error("expected tile (1,1,0) to contain Tokyo")
	}
	if box.Contains(pittsburghLon, pittsburghLat) {
		t.Error("expected tile (1,1,0) to not contain Pittsburgh")
	}
}

func TestNewBoxPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for x out of range")
		}
	}()
	NewBox(Coordinate{Z: 1, X: 2, Y: 0})
}

func TestUVWorldTile(t *testing.T) {
	c := Coordinate{Z: 0, X: 0, Y: 0}
	cases := []struct {
		lon, lat float64
		u, v     uint32
	}{
		{tokyoLon, tokyoLat, 3638, 1612},
		{pittsburghLon, pittsburghLat, 1137, 1544},
		{buenosAiresLon, buenosAiresLat, 1383, 2468},
		{cairnsLon, cairnsLat, 3708, 2241},
	}
	for _, c2 := range cases {
		if got := U(c2.lon, c); got != c2.u {
			t.Errorf("U(%v) = %d, want %d", c2.lon, got, c2.u)
		}
		if got := V(c2.lat, c); got != c2.v {
			t.Errorf("V(%v) = %d, want %d", c2.lat, got, c2.v)
		}
	}
}

func TestUVAtDeeperZoom(t *testing.T) {
	c := Coordinate{Z: 16, X: 58211, Y: 25806}
	if got := U(tokyoLon, c); got != 3338 {
		t.Errorf("U at z16 = %d, want 3338", got)
	}
	if got := V(tokyoLat, c); got != 2387 {
		t.Errorf("V at z16 = %d, want 2387", got)
	}
}
