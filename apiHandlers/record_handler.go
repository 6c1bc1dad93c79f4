package apiHandlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"barkmap/entities"
	"barkmap/internal/vectortile"
	"barkmap/services"
)

// RecordHandler handles business record creation and lookup HTTP requests.
type RecordHandler struct {
	records *services.RecordService
}

// NewRecordHandler creates a new record handler.
func NewRecordHandler(records *services.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

// SetupRoutes adds business record endpoints to the router.
func (h *RecordHandler) SetupRoutes(e *core.ServeEvent) {
	e.Router.POST("/api/records", func(re *core.RequestEvent) error {
		return h.handleCreateRecord(re)
	})
	e.Router.GET("/api/dogs/{dogId}/records", func(re *core.RequestEvent) error {
		return h.handleRecordsForDog(re)
	})
}

type createRecordRequest struct {
	DogID        string  `json:"dogId"`
	BusinessType string  `json:"businessType"`
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
}

func (h *RecordHandler) handleCreateRecord(re *core.RequestEvent) error {
	var body createRecordRequest
	if err := re.BindBody(&body); err != nil {
		return re.BadRequestError("invalid request body", err)
	}

	record, err := h.records.CreateRecord(
		re.Request.Context(),
		body.DogID,
		vectortile.BusinessType(body.BusinessType),
		body.Longitude,
		body.Latitude,
	)
	if err != nil {
		if _, ok := err.(*entities.MultiValidationError); ok {
			return re.BadRequestError(err.Error(), err)
		}
		return re.InternalServerError("failed to create business record", err)
	}

	return re.JSON(http.StatusCreated, record)
}

func (h *RecordHandler) handleRecordsForDog(re *core.RequestEvent) error {
	dogID := re.Request.PathValue("dogId")

	const maxRecords = 100
	records, err := h.records.RecordsForDog(re.Request.Context(), dogID, maxRecords)
	if err != nil {
		return re.InternalServerError("failed to fetch business records", err)
	}

	return re.JSON(http.StatusOK, records)
}
