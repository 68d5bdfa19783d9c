package model

import "strings"

// Canonical category labels offered by the client.
const (
	CategoryDistanceDriver = "Distance Driver"
	CategoryFairwayDriver  = "Fairway Driver"
	CategoryMidRange       = "Mid-Range"
	CategoryPutter         = "Putter"
	CategoryDiscBag        = "Disc Bag"
	CategoryAccessories    = "Accessories and baskets"
)

// Categories lists the canonical labels in display order.
var Categories = []string{
	CategoryDistanceDriver,
	CategoryFairwayDriver,
	CategoryMidRange,
	CategoryPutter,
	CategoryDiscBag,
	CategoryAccessories,
}

// LegacyCategories maps retired labels to their canonical replacement.
// Matching is exact; no case folding or pattern matching.
var LegacyCategories = map[string]string{
	"Basket":                CategoryAccessories,
	"Accessories":           CategoryAccessories,
	"Accessories & Baskets": CategoryAccessories,
}

// ImagePrefix is the URL prefix static category images are served under.
const ImagePrefix = "/images/"

// DefaultImage is used for categories without a dedicated image.
const DefaultImage = ImagePrefix + "default.svg"

var categoryImages = map[string]string{
	CategoryDistanceDriver: ImagePrefix + "distance-driver.svg",
	CategoryFairwayDriver:  ImagePrefix + "fairway-driver.svg",
	CategoryMidRange:       ImagePrefix + "mid-range.svg",
	CategoryPutter:         ImagePrefix + "putter.svg",
	CategoryDiscBag:        ImagePrefix + "disc-bag.svg",
	CategoryAccessories:    ImagePrefix + "accessories.svg",
}

// CategoryDefaultImage returns the image path used when a product has none.
// Unknown categories get DefaultImage.
func CategoryDefaultImage(category string) string {
	if img, ok := categoryImages[strings.TrimSpace(category)]; ok {
		return img
	}
	return DefaultImage
}

// CanonicalCategory returns the current label for a possibly retired one.
func CanonicalCategory(category string) string {
	if c, ok := LegacyCategories[category]; ok {
		return c
	}
	return category
}
