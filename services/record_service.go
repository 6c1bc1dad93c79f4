package services

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb"

	"barkmap/entities"
	"barkmap/events"
	"barkmap/events/types"
	"barkmap/interfaces"
	"barkmap/internal/obstelemetry"
	"barkmap/internal/vectortile"
	"barkmap/validation"
)

// RecordService orchestrates business record creation: validation, storage,
// metrics and domain event dispatch.
type RecordService struct {
	records    interfaces.RecordRepository
	validator  *validation.BusinessRecordValidator
	dispatcher *events.Dispatcher
}

// NewRecordService creates a new record service.
func NewRecordService(records interfaces.RecordRepository, dispatcher *events.Dispatcher) *RecordService {
	return &RecordService{
		records:    records,
		validator:  validation.NewBusinessRecordValidator(),
		dispatcher: dispatcher,
	}
}

// CreateRecord validates and stores a new business record, publishing a
// RecordCreated event on success.
func (s *RecordService) CreateRecord(ctx context.Context, dogID string, businessType vectortile.BusinessType, lon, lat float64) (*entities.BusinessRecord, error) {
	if errs := s.validator.ValidateBusinessRecordCreation(businessType, lon, lat); errs.HasErrors() {
		return nil, errs
	}

	record := &entities.BusinessRecord{
		DogID:        dogID,
		BusinessType: businessType,
		Location:     orb.Point{lon, lat},
		Timestamp:    time.Now().UTC(),
	}

	if err := s.records.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create business record: %w", err)
	}

	obstelemetry.RecordsCreatedTotal.WithLabelValues(string(businessType)).Inc()

	if s.dispatcher != nil {
		if err := s.dispatcher.Publish(ctx, types.NewRecordCreated(record)); err != nil {
			return record, fmt.Errorf("publish record created event: %w", err)
		}
	}

	return record, nil
}

// DeleteRecord removes a business record and publishes a RecordDeleted
// event on success.
func (s *RecordService) DeleteRecord(ctx context.Context, recordID, dogID string) error {
	if err := s.records.Delete(ctx, recordID); err != nil {
		return fmt.Errorf("delete business record: %w", err)
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.Publish(ctx, types.NewRecordDeleted(recordID, dogID)); err != nil {
			return fmt.Errorf("publish record deleted event: %w", err)
		}
	}

	return nil
}

// RecordsForDog returns up to maxRecords business records for a dog, newest
// first.
func (s *RecordService) RecordsForDog(ctx context.Context, dogID string, maxRecords int) ([]entities.BusinessRecord, error) {
	return s.records.QueryByDog(ctx, dogID, maxRecords)
}
