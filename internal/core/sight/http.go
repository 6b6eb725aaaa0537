package sight

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

// # Public

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:         request.URL.Query().Get("q"),
		DestinationID: int64(convert.ToInt(request.URL.Query().Get("destination_id"))),
	}

	sights, total := handler.service.Published(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	respond.Paginated(writer, sights, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.ID(request, "slug")

	sight := handler.service.PublishedBySlug(request.Context(), slug)
	if sight == nil {
		respond.Error(writer, request, apperr.NotFound("Sight"))
		return
	}
	respond.OK(writer, sight)
}

// # Admin

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	sightID, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sight, err := handler.service.Get(request.Context(), sightID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sight)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sight, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, sight)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	sightID, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sight, err := handler.service.Update(request.Context(), sightID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sight)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	sightID, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), sightID); err != nil {
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
