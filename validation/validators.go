package validation

import (
	"strings"

	"barkmap/entities"
	"barkmap/internal/vectortile"
)

// BusinessRecordValidator validates business-record creation input.
type BusinessRecordValidator struct{}

// NewBusinessRecordValidator creates a new business record validator.
func NewBusinessRecordValidator() *BusinessRecordValidator {
	return &BusinessRecordValidator{}
}

// ValidateBusinessRecordCreation validates data for business record creation.
func (v *BusinessRecordValidator) ValidateBusinessRecordCreation(businessType vectortile.BusinessType, lon, lat float64) *entities.MultiValidationError {
	errors := entities.NewMultiValidationError()

	if businessType != vectortile.Pee && businessType != vectortile.Poo {
		errors.Add("businessType", "Business type must be 'pee' or 'poo'")
	}

	if lon < -180 || lon > 180 {
		errors.Add("location.longitude", "Longitude must be between -180 and 180")
	}
	if lat < -90 || lat > 90 {
		errors.Add("location.latitude", "Latitude must be between -90 and 90")
	}

	return errors
}

// DogValidator validates dog entities and related data.
type DogValidator struct{}

// NewDogValidator creates a new dog validator.
func NewDogValidator() *DogValidator {
	return &DogValidator{}
}

// ValidateDogCreation validates data for dog registration.
func (v *DogValidator) ValidateDogCreation(name string) *entities.MultiValidationError {
	errors := entities.NewMultiValidationError()

	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		errors.Add("name", "Dog name cannot be empty")
	} else if len(trimmedName) > 100 {
		errors.Add("name", "Dog name cannot exceed 100 characters")
	}

	return errors
}

// GeographicValidator validates geographic data.
type GeographicValidator struct{}

// NewGeographicValidator creates a new geographic validator.
func NewGeographicValidator() *GeographicValidator {
	return &GeographicValidator{}
}

// ValidateBoundingBox validates a bounding box.
func (v *GeographicValidator) ValidateBoundingBox(bbox *entities.BoundingBox) *entities.MultiValidationError {
	errors := entities.NewMultiValidationError()

	if bbox == nil {
		return errors
	}

	if bbox.North < -90 || bbox.North > 90 {
		errors.Add("north", "North latitude must be between -90 and 90")
	}
	if bbox.South < -90 || bbox.South > 90 {
		errors.Add("south", "South latitude must be between -90 and 90")
	}
	if bbox.North <= bbox.South {
		errors.Add("bounding_box", "North latitude must be greater than south latitude")
	}

	if bbox.East < -180 || bbox.East > 180 {
		errors.Add("east", "East longitude must be between -180 and 180")
	}
	if bbox.West < -180 || bbox.West > 180 {
		errors.Add("west", "West longitude must be between -180 and 180")
	}

	return errors
}

// ValidatorSuite provides access to all validators.
type ValidatorSuite struct {
	Record     *BusinessRecordValidator
	Dog        *DogValidator
	Geographic *GeographicValidator
}

// NewValidatorSuite creates a new validator suite.
func NewValidatorSuite() *ValidatorSuite {
	return &ValidatorSuite{
		Record:     NewBusinessRecordValidator(),
		Dog:        NewDogValidator(),
		Geographic: NewGeographicValidator(),
	}
}
