// Package catalog is a small rule-based recommender that serves the same
// HTTP contract as the production model. It backs local development and
// end-to-end tests.
package catalog

import "arbotique/internal/dto"

func img(photo string) string {
	return "https://images.unsplash.com/photo-" + photo + "?w=200&h=200&fit=crop"
}

// Outfits returns the built-in catalog. Callers may modify the returned slice.
func Outfits() []dto.RemoteOutfit {
	return []dto.RemoteOutfit{
		{
			OutfitID:     "outfit_001",
			Name:         "Business Professional Outfit",
			Description:  "Complete professional business outfit for office meetings",
			Style:        "business",
			ColorScheme:  "navy",
			TotalPrice:   12497,
			TargetGender: "male",
			TargetAge:    "25-45",
			InStock:      true,
			Items: []dto.RemoteItem{
				{Type: "top", Name: "White Formal Shirt", Brand: "Office Wear", Price: 1899, ImageURL: img("1596755094514-f87e40cc0606")},
				{Type: "bottom", Name: "Navy Blue Trousers", Brand: "Formal Wear Co", Price: 3499, ImageURL: img("1594634319951-eb4e2a6eb4e3")},
				{Type: "shoes", Name: "Brown Formal Shoes", Brand: "Executive Style", Price: 3999, ImageURL: img("1549298916-b41d501d3772")},
				{Type: "accessory", Name: "Brown Leather Belt", Brand: "Accessories Plus", Price: 1499, ImageURL: img("1544967348-c7ceb6ec5ec0")},
				{Type: "accessory", Name: "Silver Watch", Brand: "Time Style", Price: 2599, ImageURL: img("1523275335684-37898b6baf30")},
			},
		},
		{
			OutfitID:     "outfit_002",
			Name:         "Casual Streetwear Look",
			Description:  "Trendy streetwear outfit for casual outings",
			Style:        "streetwear",
			ColorScheme:  "blue",
			TotalPrice:   8497,
			TargetGender: "male",
			TargetAge:    "18-30",
			InStock:      true,
			Items: []dto.RemoteItem{
				{Type: "top", Name: "Blue Streetwear Hoodie", Brand: "Urban Style", Price: 2999, ImageURL: img("1516851295518-3b29f0e2b876")},
				{Type: "bottom", Name: "Black Denim Jeans", Brand: "Denim Co", Price: 2499, ImageURL: img("1542291026-7eec264c27ff")},
				{Type: "shoes", Name: "White Sneakers", Brand: "Street Kicks", Price: 3999, ImageURL: img("1549298916-b41d501d3772")},
			},
		},
		{
			OutfitID:     "outfit_003",
			Name:         "Sporty Athletic Look",
			Description:  "Comfortable athletic outfit for workouts and sports",
			Style:        "sporty",
			ColorScheme:  "gray",
			TotalPrice:   5497,
			TargetGender: "male",
			TargetAge:    "16-35",
			InStock:      true,
			Items: []dto.RemoteItem{
				{Type: "top", Name: "Gray Athletic T-Shirt", Brand: "Athletic Pro", Price: 1299, ImageURL: img("1521572163474-6864f9cf17ab")},
				{Type: "bottom", Name: "Black Track Pants", Brand: "Athletic Pro", Price: 1499, ImageURL: img("1586790170083-2c9cadedfd79")},
				{Type: "shoes", Name: "Red Running Shoes", Brand: "Athletic Pro", Price: 5499, ImageURL: img("1542291026-7eec264c27ff")},
			},
		},
		{
			OutfitID:     "outfit_004",
			Name:         "Elegant Evening Look",
			Description:  "Elegant evening outfit for special occasions",
			Style:        "elegant",
			ColorScheme:  "black",
			TotalPrice:   15497,
			TargetGender: "female",
			TargetAge:    "25-40",
			InStock:      true,
			Items: []dto.RemoteItem{
				{Type: "dress", Name: "Black Evening Dress", Brand: "Sophisticate", Price: 5799, ImageURL: img("1539008835657-9e8e9680c956")},
				{Type: "shoes", Name: "Black Heels", Brand: "Elegant Steps", Price: 3299, ImageURL: img("1549298916-b41d501d3772")},
				{Type: "accessory", Name: "Gold Clutch Bag", Brand: "Luxury Bags", Price: 4499, ImageURL: img("1553062407-98eeb64c613e")},
				{Type: "accessory", Name: "Gold Earrings", Brand: "Jewelry Plus", Price: 1899, ImageURL: img("1596944924617-7cfdf483c77e")},
			},
		},
		{
			OutfitID:     "outfit_005",
			Name:         "Casual Summer Look",
			Description:  "Bright and comfortable summer outfit",
			Style:        "casual",
			ColorScheme:  "yellow",
			TotalPrice:   6797,
			TargetGender: "female",
			TargetAge:    "18-30",
			InStock:      true,
			Items: []dto.RemoteItem{
				{Type: "dress", Name: "Yellow Summer Dress", Brand: "Sunny Style", Price: 2299, ImageURL: img("1515372039744-b8e2a921672c")},
				{Type: "shoes", Name: "Beige Flats", Brand: "Comfort Zone", Price: 1999, ImageURL: img("1549298916-b41d501d3772")},
				{Type: "accessory", Name: "Brown Sunglasses", Brand: "Sun Style", Price: 2499, ImageURL: img("1473496169904-658ba7c44d8a")},
			},
		},
		{
			OutfitID:     "outfit_006",
			Name:         "Modern Office Look",
			Description:  "Professional business outfit for modern women",
			Style:        "business",
			ColorScheme:  "gray",
			TotalPrice:   13497,
			TargetGender: "female",
			TargetAge:    "25-35",
			InStock:      true,
			Items: []dto.RemoteItem{
				{Type: "top", Name: "Gray Business Blazer", Brand: "Power Dress", Price: 4499, ImageURL: img("1584952796400-b9c0c7a87230")},
				{Type: "bottom", Name: "Black Formal Trousers", Brand: "Power Dress", Price: 2999, ImageURL: img("1594634319951-eb4e2a6eb4e3")},
				{Type: "top", Name: "White Blouse", Brand: "Office Wear", Price: 1899, ImageURL: img("1483985988355-763628e1915e")},
				{Type: "shoes", Name: "Black Pumps", Brand: "Elegant Steps", Price: 2599, ImageURL: img("1549298916-b41d501d3772")},
				{Type: "accessory", Name: "Black Handbag", Brand: "Fashion Hub", Price: 1499, ImageURL: img("1553062407-98eeb64c613e")},
			},
		},
		{
			OutfitID:     "outfit_007",
			Name:         "Casual Weekend Look",
			Description:  "Comfortable casual outfit for weekends",
			Style:        "casual",
			ColorScheme:  "blue",
			TotalPrice:   7497,
			TargetGender: "unisex",
			TargetAge:    "18-35",
			InStock:      true,
			Items: []dto.RemoteItem{
				{Type: "top", Name: "Blue Denim Jacket", Brand: "Retro Style", Price: 3499, ImageURL: img("1574323387217-5d5c9e0c0746")},
				{Type: "top", Name: "White T-Shirt", Brand: "Comfort Wear", Price: 799, ImageURL: img("1521572163474-6864f9cf17ab")},
				{Type: "bottom", Name: "Blue Denim Jeans", Brand: "Denim Co", Price: 2499, ImageURL: img("1542291026-7eec264c27ff")},
				{Type: "shoes", Name: "White Sneakers", Brand: "Street Kicks", Price: 3999, ImageURL: img("1549298916-b41d501d3772")},
			},
		},
		{
			OutfitID:     "outfit_008",
			Name:         "Sporty Fitness Look",
			Description:  "Complete fitness outfit for workouts",
			Style:        "sporty",
			ColorScheme:  "black",
			TotalPrice:   6997,
			TargetGender: "unisex",
			TargetAge:    "16-40",
			InStock:      true,
			Items: []dto.RemoteItem{
				{Type: "top", Name: "Black Athletic Top", Brand: "Fit Gear", Price: 1999, ImageURL: img("1571019613454-1cb2f99b2d8b")},
				{Type: "bottom", Name: "Black Sports Shorts", Brand: "Athletic Pro", Price: 1299, ImageURL: img("1594634319951-eb4e2a6eb4e3")},
				{Type: "shoes", Name: "White Running Shoes", Brand: "Athletic Pro", Price: 4499, ImageURL: img("1542291026-7eec264c27ff")},
				{Type: "accessory", Name: "Sports Watch", Brand: "Time Style", Price: 1999, ImageURL: img("1523275335684-37898b6baf30")},
			},
		},
	}
}
