package outfit

import (
	"math/rand/v2"
	"sync"

	"github.com/taibuivan/closet/internal/platform/constants"
	"github.com/taibuivan/closet/internal/wardrobe/garment"
)

// Anchor is the default placement of a category on the canvas.
type Anchor struct {
	X        float64
	Y        float64
	Scale    float64
	Rotation float64

	// Jitter replaces Rotation with a uniform value in ±RotationJitterDegrees.
	Jitter bool
}

// anchors places tops above bottoms above shoes, with bags to the side.
var anchors = map[garment.Category]Anchor{
	garment.CategoryTops:    {X: 50, Y: 35, Scale: 1.3, Rotation: -2},
	garment.CategoryBottoms: {X: 50, Y: 65, Scale: 1.2, Rotation: 3},
	garment.CategoryShoes:   {X: 30, Y: 85, Scale: 0.8, Rotation: 15},
	garment.CategoryBags:    {X: 75, Y: 75, Scale: 1.0, Rotation: -10},
}

// fallbackAnchor serves accessories and anything unrecognised.
var fallbackAnchor = Anchor{X: 50, Y: 50, Scale: 1.0, Jitter: true}

// AnchorFor returns the anchor of category.
func AnchorFor(category garment.Category) Anchor {
	if anchor, ok := anchors[category]; ok {
		return anchor
	}
	return fallbackAnchor
}

// Layout computes default placements. Its random source drives the rotation
// jitter and can be seeded for reproducible layouts.
type Layout struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLayout returns a layout drawing jitter from src.
func NewLayout(src rand.Source) *Layout {
	return &Layout{rng: rand.New(src)}
}

// DefaultPlacement returns the first placement of g at stacking order zIndex.
// A garment already present in existing keeps its placement.
func (layout *Layout) DefaultPlacement(g garment.Garment, existing map[string]Placement, zIndex int) Placement {
	if placement, ok := existing[g.ID]; ok {
		return placement
	}

	anchor := AnchorFor(g.MainCategory)
	rotation := anchor.Rotation
	if anchor.Jitter {
		rotation = layout.jitter()
	}

	return Placement{
		X:        anchor.X,
		Y:        anchor.Y,
		Scale:    anchor.Scale,
		Rotation: rotation,
		ZIndex:   zIndex,
	}
}

func (layout *Layout) jitter() float64 {
	layout.mu.Lock()
	defer layout.mu.Unlock()
	return (layout.rng.Float64()*2 - 1) * constants.RotationJitterDegrees
}

// clampPlacement keeps a manual adjustment on the canvas and within the scale bounds.
func clampPlacement(p Placement) Placement {
	p.X = clamp(p.X, 0, 100)
	p.Y = clamp(p.Y, 0, 100)
	p.Scale = clamp(p.Scale, constants.MinPlacementScale, constants.MaxPlacementScale)
	return p
}

func clamp(value, low, high float64) float64 {
	return min(max(value, low), high)
}
