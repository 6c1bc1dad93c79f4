package types

import (
	"barkmap/entities"

	"github.com/google/uuid"
)

// Event types for business records.
const (
	RecordCreatedEvent = "record.created"
	RecordDeletedEvent = "record.deleted"
)

// RecordCreated represents a business record creation event. Business
// records are immutable once created (there is no "updated" variant).
type RecordCreated struct {
	BaseEvent
	Record *entities.BusinessRecord `json:"record"`
}

// RecordDeleted represents a business record deletion event.
type RecordDeleted struct {
	BaseEvent
	RecordID string `json:"record_id"`
	DogID    string `json:"dog_id"`
}

// NewRecordCreated creates a new record created event.
func NewRecordCreated(record *entities.BusinessRecord) *RecordCreated {
	return &RecordCreated{
		BaseEvent: NewBaseEvent(
			uuid.New().String(),
			RecordCreatedEvent,
			record.ID,
			record,
		),
		Record: record,
	}
}

// NewRecordDeleted creates a new record deleted event.
func NewRecordDeleted(recordID, dogID string) *RecordDeleted {
	return &RecordDeleted{
		BaseEvent: NewBaseEvent(
			uuid.New().String(),
			RecordDeletedEvent,
			recordID,
			map[string]string{
				"record_id": recordID,
				"dog_id":    dogID,
			},
		),
		RecordID: recordID,
		DogID:    dogID,
	}
}
