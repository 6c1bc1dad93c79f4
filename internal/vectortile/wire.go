package vectortile

import "google.golang.org/protobuf/encoding/protowire"

// GeomType mirrors the Mapbox Vector Tile Tile.GeomType enum. Only POINT
// is ever emitted by this compiler; the others are named for completeness.
type GeomType int32

const (
	GeomUnknown    GeomType = 0
	GeomPoint      GeomType = 1
	GeomLineString GeomType = 2
	GeomPolygon    GeomType = 3
)

// Value is a tagged union mirroring Tile.Value. Only the string and signed
// integer variants are represented; business records never produce the
// others.
type Value struct {
	StringValue *string
	IntValue    *int64
}

// Feature mirrors Tile.Feature: a geometry plus a flat, packed sequence of
// key/value index pairs into the owning layer's keys/values tables.
type Feature struct {
	ID       uint64
	Tags     []uint32
	Type     GeomType
	Geometry []uint32
}

// Layer mirrors Tile.Layer.
type Layer struct {
	Version  uint32
	Name     string
	Features []Feature
	Keys     []string
	Values   []Value
	Extent   uint32
}

// Tile mirrors the top-level Tile message: a sequence of layers.
type Tile struct {
	Layers []Layer
}

// Field numbers from the Mapbox Vector Tile spec (vector_tile.proto).
const (
	fieldLayerName     = 1
	fieldLayerFeatures = 2
	fieldLayerKeys     = 3
	fieldLayerValues   = 4
	fieldLayerExtent   = 5
	fieldLayerVersion  = 15

	fieldFeatureID       = 1
	fieldFeatureTags     = 2
	fieldFeatureType     = 3
	fieldFeatureGeometry = 4

	fieldValueStringValue = 1
	fieldValueIntValue    = 4

	fieldTileLayers = 3
)

// Marshal serializes a Tile to the MVT protobuf wire format. It is built
// directly on protowire primitives rather than a generated message type:
// the frequency-sorted value table has to be assembled before any byte is
// written, which a generated marshaler's single-pass encoding does not
// leave room for.
func Marshal(t *Tile) []byte {
	var buf []byte
	for _, layer := range t.Layers {
		buf = protowire.AppendTag(buf, fieldTileLayers, protowire.BytesType)
		buf = protowire.AppendBytes(buf, marshalLayer(layer))
	}
	return buf
}

func marshalLayer(l Layer) []byte {
	var buf []byte

	buf = protowire.AppendTag(buf, fieldLayerName, protowire.BytesType)
	buf = protowire.AppendString(buf, l.Name)

	for _, f := range l.Features {
		buf = protowire.AppendTag(buf, fieldLayerFeatures, protowire.BytesType)
		buf = protowire.AppendBytes(buf, marshalFeature(f))
	}

	for _, k := range l.Keys {
		buf = protowire.AppendTag(buf, fieldLayerKeys, protowire.BytesType)
		buf = protowire.AppendString(buf, k)
	}

	for _, v := range l.Values {
		buf = protowire.AppendTag(buf, fieldLayerValues, protowire.BytesType)
		buf = protowire.AppendBytes(buf, marshalValue(v))
	}

	buf = protowire.AppendTag(buf, fieldLayerExtent, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(l.Extent))

	buf = protowire.AppendTag(buf, fieldLayerVersion, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(l.Version))

	return buf
}

func marshalFeature(f Feature) []byte {
	var buf []byte

	buf = protowire.AppendTag(buf, fieldFeatureID, protowire.VarintType)
	buf = protowire.AppendVarint(buf, f.ID)

	if len(f.Tags) > 0 {
		var packed []byte
		for _, tag := range f.Tags {
			packed = protowire.AppendVarint(packed, uint64(tag))
		}
		buf = protowire.AppendTag(buf, fieldFeatureTags, protowire.BytesType)
		buf = protowire.AppendBytes(buf, packed)
	}

	buf = protowire.AppendTag(buf, fieldFeatureType, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(f.Type))

	if len(f.Geometry) > 0 {
		var packed []byte
		for _, g := range f.Geometry {
			packed = protowire.AppendVarint(packed, uint64(g))
		}
		buf = protowire.AppendTag(buf, fieldFeatureGeometry, protowire.BytesType)
		buf = protowire.AppendBytes(buf, packed)
	}

	return buf
}

func marshalValue(v Value) []byte {
	var buf []byte
	switch {
	case v.StringValue != nil:
		buf = protowire.AppendTag(buf, fieldValueStringValue, protowire.BytesType)
		buf = protowire.AppendString(buf, *v.StringValue)
	case v.IntValue != nil:
		buf = protowire.AppendTag(buf, fieldValueIntValue, protowire.VarintType)
		buf = protowire.AppendVarint(buf, uint64(*v.IntValue))
	}
	return buf
}

// zigzag encodes a coordinate the way the MVT geometry command stream
// expects. u/v are always in [0, Extent) here, so this is only ever used on
// non-negative int64 inputs and is not a faithful 32-bit two's-complement
// zigzag over the full uint32 range (it operates on the 64-bit shift of n,
// not a 32-bit wraparound): it is exact for this buffer's actual inputs,
// not a general-purpose zigzag(uint32).
func zigzag(n int64) uint32 {
	return uint32((n << 1) ^ (n >> 63))
}
