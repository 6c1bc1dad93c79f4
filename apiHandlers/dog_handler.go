package apiHandlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"barkmap/entities"
	"barkmap/services"
)

// DogHandler handles dog registration and lookup HTTP requests.
type DogHandler struct {
	dogs *services.DogService
}

// NewDogHandler creates a new dog handler.
func NewDogHandler(dogs *services.DogService) *DogHandler {
	return &DogHandler{dogs: dogs}
}

// SetupRoutes adds dog endpoints to the router.
func (h *DogHandler) SetupRoutes(e *core.ServeEvent) {
	e.Router.POST("/api/dogs", func(re *core.RequestEvent) error {
		return h.handleRegisterDog(re)
	})
	e.Router.GET("/api/dogs/{dogId}", func(re *core.RequestEvent) error {
		return h.handleGetDog(re)
	})
}

type registerDogRequest struct {
	Name string `json:"name"`
}

func (h *DogHandler) handleRegisterDog(re *core.RequestEvent) error {
	var body registerDogRequest
	if err := re.BindBody(&body); err != nil {
		return re.BadRequestError("invalid request body", err)
	}

	var ownerID string
	if authRecord := re.Auth; authRecord != nil {
		ownerID = authRecord.Id
	}

	dog, err := h.dogs.RegisterDog(re.Request.Context(), body.Name, ownerID)
	if err != nil {
		if _, ok := err.(*entities.MultiValidationError); ok {
			return re.BadRequestError(err.Error(), err)
		}
		return re.InternalServerError("failed to register dog", err)
	}

	return re.JSON(http.StatusCreated, dog)
}

func (h *DogHandler) handleGetDog(re *core.RequestEvent) error {
	dogID := re.Request.PathValue("dogId")

	dog, err := h.dogs.GetDog(re.Request.Context(), dogID)
	if err != nil {
		return re.NotFoundError("dog not found", err)
	}

	return re.JSON(http.StatusOK, dog)
}
