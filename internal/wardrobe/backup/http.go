package backup

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
	router.Get("/", handler.exportBackup)
	router.Post("/", handler.importBackup)
}

func (handler *Handler) exportBackup(writer http.ResponseWriter, request *http.Request) {
	respond.Attachment(writer, handler.service.Filename(), handler.service.Export())
}

func (handler *Handler) importBackup(writer http.ResponseWriter, request *http.Request) {
	data, err := requestutil.ReadBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.Import(request.Context(), data, requestutil.IsConfirmed(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}
