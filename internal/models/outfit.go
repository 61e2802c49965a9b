package models

type ItemType string

const (
	ItemTypeTop       ItemType = "top"
	ItemTypeBottom    ItemType = "bottom"
	ItemTypeShoes     ItemType = "shoes"
	ItemTypeAccessory ItemType = "accessory"
	ItemTypeDress     ItemType = "dress"
)

type OutfitItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Price    int      `json:"price"`
	ImageURL string   `json:"image_url"`
	Type     ItemType `json:"type"`
}

// Outfit is one recommended bundle. TotalPrice is display data and is not
// derived from Items.
type Outfit struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	TotalPrice   int          `json:"total_price"`
	Style        string       `json:"style"`
	ColorScheme  string       `json:"color_scheme"`
	TargetGender string       `json:"target_gender"`
	Items        []OutfitItem `json:"items"`
}

// ItemsTotal sums the item prices.
func (o Outfit) ItemsTotal() int {
	total := 0
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}
