package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/periplus-travel/periplus/internal/platform/request"
	"github.com/periplus-travel/periplus/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.get)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Put("/", handler.upsert)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Get(request.Context()))
}

func (handler *Handler) upsert(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	settings, err := handler.service.Upsert(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, settings)
}
