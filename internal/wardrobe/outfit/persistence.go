package outfit

import (
	"encoding/json"
	"log/slog"

	"github.com/taibuivan/closet/internal/platform/constants"
	"github.com/taibuivan/closet/internal/platform/kvstore"
	"github.com/taibuivan/closet/internal/platform/persist"
)

// NewAggregate returns the persistence handle of the outfit collection, with
// probes for the v1 and unversioned keys.
func NewAggregate(store kvstore.Store, notifier persist.Notifier, logger *slog.Logger) *persist.Aggregate[[]Outfit] {
	name := constants.AggregateOutfits
	return persist.New(store, name, constants.SchemaVersion, notifier, logger,
		persist.Probe[[]Outfit]{Key: persist.VersionedKey(name, constants.LegacySchemaVersion), Decode: DecodeLegacy},
		persist.Probe[[]Outfit]{Key: persist.VersionedKey(name, ""), Decode: DecodeLegacy},
	)
}

// legacyPlacement is a v1 position entry, keyed by garment inside the entry.
type legacyPlacement struct {
	ItemID string `json:"itemId"`
	Placement
}

type legacyOutfit struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Items     []string        `json:"items"`
	Positions json.RawMessage `json:"positions"`
	CreatedAt int64           `json:"createdAt"`
}

/*
DecodeLegacy reads outfits whose positions may be either the current map form
or the v1 array of {itemId, x, y, scale, rotation, zIndex}.
*/
func DecodeLegacy(data []byte) ([]Outfit, error) {
	var raw []legacyOutfit
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	outfits := make([]Outfit, 0, len(raw))
	for _, entry := range raw {
		positions, err := decodePositions(entry.Positions)
		if err != nil {
			return nil, err
		}
		outfits = append(outfits, Outfit{
			ID:        entry.ID,
			Name:      entry.Name,
			Items:     entry.Items,
			Positions: positions,
			CreatedAt: entry.CreatedAt,
		})
	}
	return outfits, nil
}

func decodePositions(raw json.RawMessage) (map[string]Placement, error) {
	positions := make(map[string]Placement)
	if len(raw) == 0 || string(raw) == "null" {
		return positions, nil
	}

	if raw[0] == '[' {
		var entries []legacyPlacement
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, err
		}
		for _, entry := range entries {
			positions[entry.ItemID] = entry.Placement
		}
		return positions, nil
	}

	if err := json.Unmarshal(raw, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}
