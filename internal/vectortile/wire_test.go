package vectortile

import (
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestZigzagNonNegative(t *testing.T) {
	cases := []struct {
		in   int64
		want uint32
	}{
		{0, 0},
		{1, 2},
		{2048, 4096},
		{4095, 8190},
	}
	for _, c := range cases {
		if got := zigzag(c.in); got != c.want {
			t.Errorf("zigzag(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

// TestMarshalEmptyTile checks that a tile with one empty layer round-trips
// through the wire format: one Tile.layers field containing a Layer
// message with the expected name, version and extent.
func TestMarshalEmptyTile(t *testing.T) {
	tile := &Tile{Layers: []Layer{{Version: 2, Name: "business_records", Extent: 4096}}}
	buf := Marshal(tile)

	num, typ, n := protowire.ConsumeTag(buf)
	if num != fieldTileLayers || typ != protowire.BytesType {
		t.Fatalf("top-level field = (%d, %d), want (%d, %d)", num, typ, fieldTileLayers, protowire.BytesType)
	}
	buf = buf[n:]
	layerBytes, n := protowire.ConsumeBytes(buf)
	if n < 0 {
		t.Fatalf("ConsumeBytes failed: %v", protowire.ParseError(n))
	}
	buf = buf[n:]
	if len(buf) != 0 {
		t.Fatalf("%d trailing bytes after single layer", len(buf))
	}

	var gotName string
	var gotVersion uint64
	var gotExtent uint64
	for len(layerBytes) > 0 {
		num, typ, n := protowire.ConsumeTag(layerBytes)
		if n < 0 {
			t.Fatalf("ConsumeTag failed: %v", protowire.ParseError(n))
		}
		layerBytes = layerBytes[n:]
		switch num {
		case fieldLayerName:
			var v []byte
			v, n = protowire.ConsumeBytes(layerBytes)
			gotName = string(v)
		case fieldLayerVersion:
			gotVersion, n = protowire.ConsumeVarint(layerBytes)
		case fieldLayerExtent:
			gotExtent, n = protowire.ConsumeVarint(layerBytes)
		default:
			n = protowire.ConsumeFieldValue(num, typ, layerBytes)
		}
		if n < 0 {
			t.Fatalf("failed consuming field %d: %v", num, protowire.ParseError(n))
		}
		layerBytes = layerBytes[n:]
	}

	if gotName != "business_records" {
		t.Errorf("name = %q, want business_records", gotName)
	}
	if gotVersion != 2 {
		t.Errorf("version = %d, want 2", gotVersion)
	}
	if gotExtent != 4096 {
		t.Errorf("extent = %d, want 4096", gotExtent)
	}
}

// TestMarshalFeatureGeometryAndTags checks that a feature's ID, packed
// geometry and packed tags survive the wire encoding unchanged.
func TestMarshalFeatureGeometryAndTags(t *testing.T) {
	feature := Feature{
		ID:       0x41,
		Tags:     []uint32{0, 1, 2, 3},
		Type:     GeomPoint,
		Geometry: []uint32{9, 100, 200},
	}
	buf := marshalFeature(feature)

	var gotID uint64
	var gotType uint64
	var gotTags []uint32
	var gotGeometry []uint32
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			t.Fatalf("ConsumeTag failed: %v", protowire.ParseError(n))
		}
		buf = buf[n:]
		switch num {
		case fieldFeatureID:
			gotID, n = protowire.ConsumeVarint(buf)
		case fieldFeatureType:
			gotType, n = protowire.ConsumeVarint(buf)
		case fieldFeatureTags:
			var packed []byte
			packed, n = protowire.ConsumeBytes(buf)
			gotTags = decodePackedVarints(t, packed)
		case fieldFeatureGeometry:
			var packed []byte
			packed, n = protowire.ConsumeBytes(buf)
			gotGeometry = decodePackedVarints(t, packed)
		default:
			n = protowire.ConsumeFieldValue(num, typ, buf)
		}
		if n < 0 {
			t.Fatalf("failed consuming field %d: %v", num, protowire.ParseError(n))
		}
		buf = buf[n:]
	}

	if gotID != feature.ID {
		t.Errorf("id = 0x%x, want 0x%x", gotID, feature.ID)
	}
	if gotType != uint64(GeomPoint) {
		t.Errorf("type = %d, want %d", gotType, GeomPoint)
	}
	if !uint32SliceEqual(gotTags, feature.Tags) {
		t.Errorf("tags = %v, want %v", gotTags, feature.Tags)
	}
	if !uint32SliceEqual(gotGeometry, feature.Geometry) {
		t.Errorf("geometry = %v, want %v", gotGeometry, feature.Geometry)
	}
}

func decodePackedVarints(t *testing.T, buf []byte) []uint32 {
	t.Helper()
	var out []uint32
	for len(buf) > 0 {
		v, n := protowire.ConsumeVarint(buf)
		if n < 0 {
			t.Fatalf("ConsumeVarint failed: %v", protowire.ParseError(n))
		}
		out = append(out, uint32(v))
		buf = buf[n:]
	}
	return out
}

func uint32SliceEqual(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMarshalValueStringAndInt(t *testing.T) {
	s := "poo"
	sv := marshalValue(Value{StringValue: &s})
	num, typ, n := protowire.ConsumeTag(sv)
	if num != fieldValueStringValue || typ != protowire.BytesType {
		t.Fatalf("string value field = (%d, %d)", num, typ)
	}
	got, n2 := protowire.ConsumeBytes(sv[n:])
	if n2 < 0 || string(got) != s {
		t.Fatalf("string value = %q, want %q", got, s)
	}

	i := int64(1_755_317_141)
	iv := marshalValue(Value{IntValue: &i})
	num, typ, n = protowire.ConsumeTag(iv)
	if num != fieldValueIntValue || typ != protowire.VarintType {
		t.Fatalf("int value field = (%d, %d)", num, typ)
	}
	gotInt, n2 := protowire.ConsumeVarint(iv[n:])
	if n2 < 0 || int64(gotInt) != i {
		t.Fatalf("int value = %d, want %d", gotInt, i)
	}
}
