package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/periplus-travel/periplus/internal/platform/respond"
	"github.com/periplus-travel/periplus/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.search)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")
	limit := convert.ToIntD(request.URL.Query().Get("limit"), DefaultLimit)

	respond.OK(writer, handler.service.Search(request.Context(), query, limit))
}
