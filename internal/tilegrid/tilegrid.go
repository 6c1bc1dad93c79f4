// Package tilegrid maps a tile coordinate to the longitude/latitude box it
// covers and quantizes points inside that box to the tile-local integer
// grid.
package tilegrid

import (
	"math"

	"barkmap/internal/mercator"
)

// Extent is the side length, in local tile units, of the integer grid onto
// which in-tile coordinates are quantized.
const Extent = 4096

// Coordinate identifies a tile by zoom level and column/row.
type Coordinate struct {
	Z, X, Y uint32
}

// Box is the longitude/latitude box a tile covers. Both ranges are
// half-open: [Min, Max).
type Box struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
}

// NewBox computes the longitude/latitude box for a tile coordinate. Panics
// if z is outside mercator.MaxZoom or x/y are out of range for z.
func NewBox(c Coordinate) Box {
	n := uint32(mercator.TilesPerEdge(c.Z))
	if c.X >= n || c.Y >= n {
		panic("tilegrid: tile coordinate out of range for zoom level")
	}
	return Box{
		LonMin: mercator.LongitudeFromX(c.X, c.Z),
		LonMax: mercator.LongitudeFromX(c.X+1, c.Z),
		LatMin: mercator.LatitudeFromY(c.Y+1, c.Z),
		LatMax: mercator.LatitudeFromY(c.Y, c.Z),
	}
}

// Contains reports whether (lon, lat) falls inside the box, half-open on
// both axes: the upper and right edges belong to the neighboring tile.
func (b Box) Contains(lon, lat float64) bool {
	return lon >= b.LonMin && lon < b.LonMax && lat >= b.LatMin && lat < b.LatMax
}

// U returns the in-tile x coordinate, in [0, Extent), for a longitude known
// to be inside the tile at coordinate c. Undefined if lon is outside the
// tile.
func U(lon float64, c Coordinate) uint32 {
	x := mercator.XFromLongitude(lon, c.Z)
	u := math.Floor(Extent * (x - float64(c.X)))
	return uint32(u)
}

// V returns the in-tile y coordinate, in [0, Extent), for a latitude known
// to be inside the tile at coordinate c. Undefined if lat is outside the
// tile.
func V(lat float64, c Coordinate) uint32 {
	y := mercator.YFromLatitude(lat, c.Z)
	v := math.Floor(Extent * (y - float64(c.Y)))
	return uint32(v)
}
