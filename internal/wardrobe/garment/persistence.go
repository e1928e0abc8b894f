package garment

import (
	"encoding/json"
	"log/slog"

	"github.com/taibuivan/closet/internal/platform/constants"
	"github.com/taibuivan/closet/internal/platform/kvstore"
	"github.com/taibuivan/closet/internal/platform/persist"
)

// legacySubCategory is the "uncategorized" label written by the first version.
const legacySubCategory = "未分类"

// NewAggregate returns the persistence handle of the catalog, with probes for
// the v1 and unversioned keys.
func NewAggregate(store kvstore.Store, notifier persist.Notifier, logger *slog.Logger) *persist.Aggregate[[]Garment] {
	name := constants.AggregateCatalog
	return persist.New(store, name, constants.SchemaVersion, notifier, logger,
		persist.Probe[[]Garment]{Key: persist.VersionedKey(name, constants.LegacySchemaVersion), Decode: DecodeLegacy},
		persist.Probe[[]Garment]{Key: persist.VersionedKey(name, ""), Decode: DecodeLegacy},
	)
}

// DecodeLegacy reads a catalog written with localized category labels.
func DecodeLegacy(data []byte) ([]Garment, error) {
	var items []Garment
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	for i := range items {
		if category, ok := Coerce(string(items[i].MainCategory)); ok {
			items[i].MainCategory = category
		}
		if items[i].SubCategory == legacySubCategory {
			items[i].SubCategory = constants.DefaultSubCategory
		}
	}
	return items, nil
}
