package tour

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/periplus-travel/periplus/internal/platform/apperr"
	"github.com/periplus-travel/periplus/internal/platform/middleware"
	requestutil "github.com/periplus-travel/periplus/internal/platform/request"
	"github.com/periplus-travel/periplus/internal/platform/respond"
	"github.com/periplus-travel/periplus/internal/platform/sec"
	"github.com/periplus-travel/periplus/pkg/convert"
	"github.com/periplus-travel/periplus/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPublished)
	router.Get("/{slug}", handler.getPublished)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/{id}", handler.get)
	router.Post("/", handler.create)
	router.Patch("/{id}", handler.update)

	router.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.delete)
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:         request.URL.Query().Get("q"),
		DestinationID: int64(convert.ToInt(request.URL.Query().Get("destination_id"))),
	}

	tours, total := handler.service.Published(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	respond.Paginated(writer, tours, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	tour := handler.service.PublishedBySlug(request.Context(), requestutil.ID(request, "slug"))
	if tour == nil {
		respond.Error(writer, request, apperr.NotFound("Tour"))
		return
	}
	respond.OK(writer, tour)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	tourID, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tour, err := handler.service.Get(request.Context(), tourID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tour)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tour, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tour)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	tourID, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tour, err := handler.service.Update(request.Context(), tourID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tour)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	tourID, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), tourID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func parseID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(requestutil.ID(request, "id"), 10, 64)
	if err != nil {
		return 0, apperr.ValidationError("Invalid numeric id")
	}
	return id, nil
}
