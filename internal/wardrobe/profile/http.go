package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/closet/internal/platform/request"
	"github.com/taibuivan/closet/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getProfile)
	router.Put("/", handler.updateProfile)
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.GetProfile())
}

func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	var input BodyProfile
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateProfile(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}
