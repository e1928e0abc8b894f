package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/closet/internal/platform/respond"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
	"github.com/taibuivan/closet/internal/wardrobe/outfit"
)

// Handler serves the statistics report.
type Handler struct {
	catalog    *garment.Catalog
	collection *outfit.Collection
	aggregator *Aggregator
}

func NewHandler(catalog *garment.Catalog, collection *outfit.Collection, aggregator *Aggregator) *Handler {
	return &Handler{catalog: catalog, collection: collection, aggregator: aggregator}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getReport)
}

func (handler *Handler) getReport(writer http.ResponseWriter, request *http.Request) {
	var outfits []outfit.Outfit
	if handler.collection != nil {
		outfits = handler.collection.List()
	}
	respond.OK(writer, handler.aggregator.Compute(handler.catalog.List(), outfits))
}
