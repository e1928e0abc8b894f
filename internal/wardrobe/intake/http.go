package intake

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/closet/internal/platform/request"
	"github.com/taibuivan/closet/internal/platform/respond"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.openDraft)
	router.Get("/{id}", handler.getDraft)
	router.Patch("/{id}", handler.updateDraft)
	router.Delete("/{id}", handler.closeDraft)
	router.Post("/{id}/submit", handler.submitDraft)
}

func (handler *Handler) openDraft(writer http.ResponseWriter, request *http.Request) {
	var input garment.Patch
	if request.ContentLength != 0 {
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	draft, err := handler.service.OpenDraft(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if draft.Busy {
		respond.Accepted(writer, draft)
		return
	}
	respond.Created(writer, draft)
}

func (handler *Handler) getDraft(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.GetDraft(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) updateDraft(writer http.ResponseWriter, request *http.Request) {
	var patch garment.Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.UpdateDraft(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) closeDraft(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.CloseDraft(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) submitDraft(writer http.ResponseWriter, request *http.Request) {
	created, err := handler.service.SubmitDraft(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}
