package geo

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/periplus-travel/periplus/internal/platform/apperr"
	"github.com/periplus-travel/periplus/internal/platform/middleware"
	requestutil "github.com/periplus-travel/periplus/internal/platform/request"
	"github.com/periplus-travel/periplus/internal/platform/respond"
	"github.com/periplus-travel/periplus/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public browse surface. Everything here reads
// published hierarchy data only; there is no auth.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/regions", handler.listRegions)
	router.Get("/regions/{slug}", handler.getRegion)
	router.Get("/prefectures/{slug}", handler.getPrefecture)
	router.Get("/divisions/{slug}", handler.getDivision)
	router.Get("/divisions/{divisionSlug}/destinations/{slug}", handler.getDestination)
}

// RegisterAdminRoutes mounts destination management under the admin prefix.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/{id}", handler.getDestinationByID)
	router.Post("/", handler.createDestination)
	router.Patch("/{id}", handler.updateDestination)

	router.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteDestination)
}

// # Public

func (handler *Handler) listRegions(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Regions(request.Context()))
}

type regionPayload struct {
	Region      *Row  `json:"region"`
	Prefectures []Row `json:"prefectures"`
}

func (handler *Handler) getRegion(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.ID(request, "slug")

	region := handler.service.ResolveRegion(request.Context(), slug)
	if region == nil {
		respond.Error(writer, request, apperr.NotFound("Region"))
		return
	}

	respond.OK(writer, regionPayload{
		Region:      region,
		Prefectures: handler.service.PrefecturesOf(request.Context(), region.Slug),
	})
}

type prefecturePayload struct {
	Prefecture *Row  `json:"prefecture"`
	Divisions  []Row `json:"divisions"`
}

func (handler *Handler) getPrefecture(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.ID(request, "slug")
	regionSlug := request.URL.Query().Get("region")

	prefecture := handler.service.ResolvePrefecture(request.Context(), slug, regionSlug)
	if prefecture == nil {
		respond.Error(writer, request, apperr.NotFound("Prefecture"))
		return
	}

	respond.OK(writer, prefecturePayload{
		Prefecture: prefecture,
		Divisions:  handler.service.DivisionsOf(request.Context(), prefecture.Slug),
	})
}

type divisionPayload struct {
	Division     *Row          `json:"division"`
	Destinations []Destination `json:"destinations"`
}

func (handler *Handler) getDivision(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.ID(request, "slug")
	prefectureSlug := request.URL.Query().Get("prefecture")

	division := handler.service.ResolveDivision(request.Context(), slug, prefectureSlug)
	if division == nil {
		respond.Error(writer, request, apperr.NotFound("Division"))
		return
	}

	respond.OK(writer, divisionPayload{
		Division:     division,
		Destinations: handler.service.DestinationsOf(request.Context(), division.ID),
	})
}

func (handler *Handler) getDestination(writer http.ResponseWriter, request *http.Request) {
	divisionSlug := requestutil.ID(request, "divisionSlug")
	slug := requestutil.ID(request, "slug")

	page := handler.service.ResolveDestinationPage(request.Context(), divisionSlug, slug)
	if page == nil {
		respond.Error(writer, request, apperr.NotFound("Destination"))
		return
	}
	respond.OK(writer, page)
}

// # Admin

func (handler *Handler) getDestinationByID(writer http.ResponseWriter, request *http.Request) {
	destinationID, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	destination, err := handler.service.DestinationByID(request.Context(), destinationID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, destination)
}

func (handler *Handler) createDestination(writer http.ResponseWriter, request *http.Request) {
	var input Destination
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateDestination(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateDestination(writer http.ResponseWriter, request *http.Request) {
	destinationID, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Destination
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateDestination(request.Context(), destinationID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteDestination(writer http.ResponseWriter, request *http.Request) {
	destinationID, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDestination(request.Context(), destinationID); err != nil {
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
