// Package featureid bit-packs a per-tile record index and tile coordinate
// into a 64-bit feature ID that is unique both within a tile and globally
// across tiles.
package featureid

import "barkmap/internal/mercator"

const zBits = 5

// Pack returns the 64-bit feature ID for the i-th record (0-based insertion
// order) in the tile at coordinate (z, x, y).
//
// Bit layout, LSB-first: z (5 bits), y (z bits), x (z bits), i (the
// remaining 64-5-2z bits). Panics if z exceeds mercator.MaxZoom, if x or y
// is out of range for z, or if i overflows the bits left for the index.
func Pack(i uint64, z, x, y uint32) uint64 {
	if z > mercator.MaxZoom {
		panic("featureid: zoom level out of range")
	}
	n := uint32(mercator.TilesPerEdge(z))
	if x >= n || y >= n {
		panic("featureid: x or y out of range for zoom level")
	}
	xBits, yBits := z, z
	indexBits := 64 - (xBits + yBits + zBits)
	if indexBits < 64 && i >= (uint64(1)<<indexBits) {
		panic("featureid: record index overflows available bits at this zoom level")
	}
	return (i << (xBits + yBits + zBits)) |
		(uint64(x) << (yBits + zBits)) |
		(uint64(y) << zBits) |
		uint64(z)
}
