package garment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/closet/internal/platform/request"
	"github.com/taibuivan/closet/internal/platform/respond"
	"github.com/taibuivan/closet/pkg/pagination"
	"github.com/taibuivan/closet/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listGarments)
	router.Post("/", handler.createGarment)
	router.Get("/{id}", handler.getGarment)
	router.Patch("/{id}", handler.updateGarment)
	router.Delete("/{id}", handler.deleteGarment)
	router.Get("/{id}/thumbnail", handler.getThumbnail)
}

func (handler *Handler) listGarments(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	garments, meta, err := handler.service.ListGarments(request.URL.Query().Get("category"), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, garments, meta)
}

func (handler *Handler) getGarment(writer http.ResponseWriter, request *http.Request) {
	garment, err := handler.service.GetGarment(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, garment)
}

func (handler *Handler) createGarment(writer http.ResponseWriter, request *http.Request) {
	var input Garment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateGarment(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateGarment(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateGarment(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteGarment(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteGarment(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) getThumbnail(writer http.ResponseWriter, request *http.Request) {
	size := query.Int(request, "size", DefaultThumbnailSize)

	thumbnail, err := handler.service.Thumbnail(requestutil.ID(request, "id"), size)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Binary(writer, "image/jpeg", thumbnail)
}
