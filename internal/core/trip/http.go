package trip

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/periplus-travel/periplus/internal/platform/apperr"
	"github.com/periplus-travel/periplus/internal/platform/middleware"
	requestutil "github.com/periplus-travel/periplus/internal/platform/request"
	"github.com/periplus-travel/periplus/internal/platform/respond"
	"github.com/periplus-travel/periplus/internal/platform/sec"
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

	router.Post("/{id}/days", handler.addDay)
	router.Patch("/{id}/days/{dayID}", handler.updateDay)
	router.Delete("/{id}/days/{dayID}", handler.deleteDay)

	router.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.delete)
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := Filter{Query: request.URL.Query().Get("q")}

	trips, total := handler.service.Published(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	respond.Paginated(writer, trips, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	trip := handler.service.PublishedBySlug(request.Context(), requestutil.ID(request, "slug"))
	if trip == nil {
		respond.Error(writer, request, apperr.NotFound("Trip"))
		return
	}
	respond.OK(writer, trip)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	tripID, err := parseParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	trip, err := handler.service.Get(request.Context(), tripID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, trip)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	trip, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, trip)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	tripID, err := parseParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	trip, err := handler.service.Update(request.Context(), tripID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, trip)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	tripID, err := parseParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), tripID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Days

func (handler *Handler) addDay(writer http.ResponseWriter, request *http.Request) {
	tripID, err := parseParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input DayInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	day, err := handler.service.AddDay(request.Context(), tripID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, day)
}

func (handler *Handler) updateDay(writer http.ResponseWriter, request *http.Request) {
	tripID, err := parseParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	dayID, err := parseParam(request, "dayID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input DayInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	day, err := handler.service.UpdateDay(request.Context(), tripID, dayID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, day)
}

func (handler *Handler) deleteDay(writer http.ResponseWriter, request *http.Request) {
	tripID, err := parseParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	dayID, err := parseParam(request, "dayID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDay(request.Context(), tripID, dayID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func parseParam(request *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(requestutil.Param(request, name), 10, 64)
	if err != nil {
		return 0, apperr.ValidationError("Invalid numeric id")
	}
	return id, nil
}
