package geocode

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/periplus-travel/periplus/internal/platform/apperr"
	requestutil "github.com/periplus-travel/periplus/internal/platform/request"
	"github.com/periplus-travel/periplus/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the trigger under the admin destination
// subtree. Geocoding has no public surface.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Post("/{id}/geocode", handler.geocode)
}

func (handler *Handler) geocode(writer http.ResponseWriter, request *http.Request) {
	destinationID, err := strconv.ParseInt(requestutil.ID(request, "id"), 10, 64)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid numeric id"))
		return
	}

	destination, err := handler.service.GeocodeDestination(request.Context(), destinationID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, destination)
}
