package seed

import (
	"go-inventory-catalog/internal/model"

	"github.com/shopspring/decimal"
)

type baselineRow struct {
	name        string
	category    string
	price       string
	quantity    int
	sku         string
	description string
}

var baselineRows = []baselineRow{
	// Distance drivers
	{"Innova Boss", model.CategoryDistanceDriver, "16.99", 24, "DG-001", "Innova – Speed 13 | Glide 5 | Turn -1 | Fade 3. Overstable high-speed driver. Great for powerful throwers."},
	{"Discraft Zeus", model.CategoryDistanceDriver, "17.99", 18, "DG-002", "Discraft – Speed 12 | Glide 5 | Turn -1 | Fade 3. Paul McBeth signature overstable driver."},
	{"Dynamic Discs Felon", model.CategoryDistanceDriver, "16.99", 20, "DG-003", "Dynamic Discs – Speed 12 | Glide 5 | Turn 0 | Fade 3. Overstable workhorse driver for headwinds."},
	{"Latitude 64 Missilen", model.CategoryDistanceDriver, "17.99", 15, "DG-004", "Latitude 64 – Speed 14 | Glide 4 | Turn 0 | Fade 4. Max-speed overstable driver for pro-level power."},
	// Fairway drivers
	{"Innova Leopard3", model.CategoryFairwayDriver, "15.99", 30, "DG-005", "Innova – Speed 7 | Glide 5 | Turn -2 | Fade 1. Understable fairway driver, great for beginners and hyzer-flips."},
	{"Discraft Buzzz SS", model.CategoryFairwayDriver, "15.99", 25, "DG-006", "Discraft – Speed 5 | Glide 5 | Turn -3 | Fade 1. Understable fairway driver ideal for anhyzer lines."},
	{"Kastaplast Reko", model.CategoryFairwayDriver, "17.99", 22, "DG-007", "Kastaplast – Speed 4 | Glide 7 | Turn -1 | Fade 1. Straight, reliable fairway driver for all skill levels."},
	// Mid-range
	{"Innova Mako3", model.CategoryMidRange, "14.99", 35, "DG-008", "Innova – Speed 5 | Glide 5 | Turn 0 | Fade 0. Perfectly neutral mid-range, goes exactly where you throw it."},
	{"Discraft Buzzz", model.CategoryMidRange, "15.99", 40, "DG-009", "Discraft – Speed 5 | Glide 4 | Turn -1 | Fade 1. The most popular mid-range disc ever made. Reliable and straight."},
	{"Dynamic Discs Verdict", model.CategoryMidRange, "14.99", 28, "DG-010", "Dynamic Discs – Speed 5 | Glide 5 | Turn -1 | Fade 2. Versatile overstable mid-range for accurate approach shots."},
	{"Westside Discs Stag", model.CategoryMidRange, "15.99", 22, "DG-011", "Westside – Speed 5 | Glide 5 | Turn -1 | Fade 1. Controllable mid-range with smooth flight path."},
	// Putters
	{"Innova Aviar", model.CategoryPutter, "13.99", 50, "DG-012", "Innova – Speed 2 | Glide 3 | Turn 0 | Fade 1. The classic putter. Reliable, consistent, trusted by pros worldwide."},
	{"Discraft Zone", model.CategoryPutter, "14.99", 38, "DG-013", "Discraft – Speed 4 | Glide 3 | Turn 0 | Fade 3. Overstable approach putter, handles any wind condition."},
	{"Dynamic Discs Judge", model.CategoryPutter, "13.99", 45, "DG-014", "Dynamic Discs – Speed 2 | Glide 4 | Turn 0 | Fade 1. Straight-flying, comfortable putter for all styles."},
	{"Axiom Envy", model.CategoryPutter, "15.99", 30, "DG-015", "Axiom – Speed 3 | Glide 3 | Turn -1 | Fade 2. Overmold putter with great feel and consistent flight."},
	// Bags
	{"Discmania Weekender Bag", model.CategoryDiscBag, "49.99", 12, "DG-016", "6–8 disc capacity. Lightweight and compact, perfect for casual rounds. Includes two beverage pockets."},
	{"Dynamic Discs Ranger Bag", model.CategoryDiscBag, "89.99", 8, "DG-017", "18+ disc capacity. Backpack-style with padded straps, cooler pocket, and rain fly included."},
	{"Prodigy Disc BP-3 Backpack", model.CategoryDiscBag, "119.99", 6, "DG-018", "20–25 disc capacity. Premium backpack with multiple pockets, insulated cooler, and ergonomic design."},
	// Baskets and accessories
	{"MVP Black Hole Pro Basket", model.CategoryAccessories, "289.99", 3, "DG-019", "Competition-grade portable disc golf basket. 24-chain dual-level catching system, heavy-duty steel construction."},
	{"Discraft Towel & Mini Marker Set", model.CategoryAccessories, "14.99", 60, "DG-020", "Includes microfiber disc cleaning towel and two mini disc markers. Essential field accessories for any round."},
}

// Baseline returns a fresh copy of the reference catalog, in insertion order.
func Baseline() []model.Product {
	products := make([]model.Product, 0, len(baselineRows))
	for _, r := range baselineRows {
		products = append(products, model.Product{
			Name:        r.name,
			Category:    r.category,
			Price:       decimal.RequireFromString(r.price),
			Quantity:    r.quantity,
			SKU:         r.sku,
			Description: r.description,
			ImageURL:    model.CategoryDefaultImage(r.category),
		})
	}
	return products
}
