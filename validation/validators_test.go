package validation

import (
	"testing"

	"barkmap/entities"
	"barkmap/internal/vectortile"
)

func TestBusinessRecordValidator_ValidateBusinessRecordCreation(t *testing.T) {
	v := NewBusinessRecordValidator()

	tests := []struct {
		name         string
		businessType vectortile.BusinessType
		lon, lat     float64
		wantErr      bool
	}{
		{"valid pee", vectortile.Pee, 8.5, 47.4, false},
		{"valid poo", vectortile.Poo, -122.4, 37.8, false},
		{"invalid business type", vectortile.BusinessType("bark"), 0, 0, true},
		{"longitude too high", vectortile.Pee, 181, 0, true},
		{"longitude too low", vectortile.Pee, -181, 0, true},
		{"latitude too high", vectortile.Pee, 0, 91, true},
		{"latitude too low", vectortile.Pee, 0, -91, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateBusinessRecordCreation(tt.businessType, tt.lon, tt.lat)
			if got := errs.HasErrors(); got != tt.wantErr {
				t.Errorf("HasErrors() = %v, want %v (errors: %v)", got, tt.wantErr, errs.Errors)
			}
		})
	}
}

func TestDogValidator_ValidateDogCreation(t *testing.T) {
	v := NewDogValidator()

	tests := []struct {
		name    string
		dogName string
		wantErr bool
	}{
		{"valid name", "Rex", false},
		{"empty name", "", true},
		{"whitespace only", "   ", true},
		{"too long", string(make([]byte, 101)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateDogCreation(tt.dogName)
			if got := errs.HasErrors(); got != tt.wantErr {
				t.Errorf("HasErrors() = %v, want %v", got, tt.wantErr)
			}
		})
	}
}

func TestGeographicValidator_ValidateBoundingBox(t *testing.T) {
	v := NewGeographicValidator()

	if errs := v.ValidateBoundingBox(nil); errs.HasErrors() {
		t.Errorf("nil bounding box should have no errors, got %v", errs.Errors)
	}

	bad := &entities.BoundingBox{North: 47.0, South: 48.0, East: 9.0, West: 8.0}
	if errs := v.ValidateBoundingBox(bad); !errs.HasErrors() {
		t.Errorf("north <= south should be invalid")
	}
}
