package garment

import (
	"time"

	"github.com/taibuivan/closet/pkg/uuid"
)

// samples are the starter garments. Images are stock product photos.
var samples = []Garment{
	{
		Name:            "Basic White Tee",
		MainCategory:    CategoryTops,
		SubCategory:     "T-Shirt",
		ImageURL:        "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=600",
		Color:           "White",
		Style:           "Casual",
		Brand:           "Uniqlo",
		Price:           "99",
		Size:            "M",
		Season:          "Summer",
		PurchaseChannel: "Online",
		PurchaseDate:    "2024-01-15",
	},
	{
		Name:            "Vintage Denim Skirt",
		MainCategory:    CategoryBottoms,
		SubCategory:     "Skirt",
		ImageURL:        "https://images.unsplash.com/photo-1582418702059-97ebafb35d09?w=600",
		Color:           "Blue",
		Style:           "Vintage",
		Brand:           "Levi's",
		Price:           "499",
		Size:            "27",
		Season:          "Spring/Summer",
		PurchaseChannel: "Store",
		PurchaseDate:    "2024-03-02",
	},
	{
		Name:            "Black Straight Trousers",
		MainCategory:    CategoryBottoms,
		SubCategory:     "Trousers",
		ImageURL:        "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=600",
		Color:           "Black",
		Style:           "Minimal",
		Brand:           "ZARA",
		Price:           "299",
		Size:            "S",
		Season:          "All-season",
		PurchaseChannel: "Store",
		PurchaseDate:    "2023-09-20",
	},
	{
		Name:            "Straw Sun Hat",
		MainCategory:    CategoryAccessories,
		SubCategory:     "Hat",
		ImageURL:        "https://images.unsplash.com/photo-1521369909029-2afed882baee?w=600",
		Color:           "Beige",
		Style:           "Resort",
		Brand:           "Muji",
		Price:           "159",
		Size:            "F",
		Season:          "Summer",
		PurchaseChannel: "Online",
		PurchaseDate:    "2023-07-12",
	},
	{
		Name:            "Leather Tote",
		MainCategory:    CategoryBags,
		SubCategory:     "Tote",
		ImageURL:        "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=600",
		Color:           "Brown",
		Style:           "Classic",
		Brand:           "Coach",
		Price:           "2400",
		Size:            "F",
		Season:          "All-season",
		PurchaseChannel: "Store",
		PurchaseDate:    "2023-11-11",
	},
	{
		Name:            "Red Court Sneakers",
		MainCategory:    CategoryShoes,
		SubCategory:     "Sneakers",
		ImageURL:        "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600",
		Color:           "Red",
		Style:           "Sporty",
		Brand:           "Nike",
		Price:           "799",
		Size:            "38",
		Season:          "Spring/Autumn",
		PurchaseChannel: "Online",
		PurchaseDate:    "2024-04-01",
	},
}

// SampleGarments returns the starter wardrobe with fresh ids. The first
// sample is the newest.
func SampleGarments(now time.Time) []Garment {
	out := make([]Garment, len(samples))
	for i, sample := range samples {
		sample.ID = uuid.New()
		sample.CreatedAt = now.Add(-time.Duration(i) * time.Minute).UnixMilli()
		out[i] = sample
	}
	return out
}
