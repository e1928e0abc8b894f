package outfit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/closet/internal/platform/request"
	"github.com/taibuivan/closet/internal/platform/respond"
	"github.com/taibuivan/closet/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterCompositionRoutes mounts the composer endpoints.
func (handler *Handler) RegisterCompositionRoutes(router chi.Router) {
	router.Post("/", handler.startComposition)
	router.Get("/{id}", handler.getComposition)
	router.Patch("/{id}", handler.renameComposition)
	router.Delete("/{id}", handler.discardComposition)
	router.Post("/{id}/garments/{garmentID}", handler.toggleGarment)
	router.Put("/{id}/placements/{garmentID}", handler.placeGarment)
	router.Post("/{id}/save", handler.saveComposition)
}

// RegisterOutfitRoutes mounts the saved-outfit endpoints.
func (handler *Handler) RegisterOutfitRoutes(router chi.Router) {
	router.Get("/", handler.listOutfits)
	router.Post("/reorder", handler.reorderOutfits)
	router.Post("/gestures", handler.handleGestures)
	router.Get("/{id}", handler.getOutfit)
	router.Patch("/{id}", handler.renameOutfit)
	router.Delete("/{id}", handler.deleteOutfit)
}

type nameInput struct {
	Name string `json:"name"`
}

type moveInput struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

type gestureInput struct {
	Events []Event `json:"events"`
}

// # Composition

func (handler *Handler) startComposition(writer http.ResponseWriter, request *http.Request) {
	respond.Created(writer, handler.service.StartComposition())
}

func (handler *Handler) getComposition(writer http.ResponseWriter, request *http.Request) {
	composition, err := handler.service.GetComposition(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, composition)
}

func (handler *Handler) renameComposition(writer http.ResponseWriter, request *http.Request) {
	var input nameInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	composition, err := handler.service.RenameComposition(requestutil.ID(request, "id"), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, composition)
}

func (handler *Handler) discardComposition(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DiscardComposition(requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) toggleGarment(writer http.ResponseWriter, request *http.Request) {
	composition, err := handler.service.ToggleGarment(requestutil.ID(request, "id"), requestutil.ID(request, "garmentID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, composition)
}

func (handler *Handler) placeGarment(writer http.ResponseWriter, request *http.Request) {
	var adjustment Adjustment
	if err := requestutil.DecodeJSON(request, &adjustment); err != nil {
		respond.Error(writer, request, err)
		return
	}

	placement, err := handler.service.PlaceGarment(requestutil.ID(request, "id"), requestutil.ID(request, "garmentID"), adjustment)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, placement)
}

func (handler *Handler) saveComposition(writer http.ResponseWriter, request *http.Request) {
	// The body is optional; an empty one keeps the working name.
	var input nameInput
	if request.ContentLength != 0 {
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	saved, err := handler.service.SaveComposition(request.Context(), requestutil.ID(request, "id"), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, saved)
}

// # Collection

func (handler *Handler) listOutfits(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ListOutfits())
}

func (handler *Handler) getOutfit(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetOutfit(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

// ListByGarment serves the outfits that use the garment in the {id} URL parameter.
func (handler *Handler) ListByGarment(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.OutfitsContaining(requestutil.ID(request, "id")))
}

func (handler *Handler) renameOutfit(writer http.ResponseWriter, request *http.Request) {
	var input nameInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	renamed, err := handler.service.RenameOutfit(request.Context(), requestutil.ID(request, "id"), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, renamed)
}

func (handler *Handler) deleteOutfit(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.DeleteOutfit(request.Context(), requestutil.ID(request, "id"), requestutil.IsConfirmed(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) reorderOutfits(writer http.ResponseWriter, request *http.Request) {
	var input moveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Custom(FieldFrom, input.From == nil, "This field is required")
	validator.Custom(FieldTo, input.To == nil, "This field is required")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	outfits, err := handler.service.MoveOutfit(request.Context(), *input.From, *input.To)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, outfits)
}

func (handler *Handler) handleGestures(writer http.ResponseWriter, request *http.Request) {
	var input gestureInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.HandleGestures(request.Context(), input.Events)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
