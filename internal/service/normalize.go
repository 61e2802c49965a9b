package service

import (
	"fmt"

	"arbotique/internal/dto"
	"arbotique/internal/models"
)

var placeholderImages = map[models.ItemType]string{
	models.ItemTypeTop:       "https://via.placeholder.com/300x300/4A90E2/FFFFFF?text=Top",
	models.ItemTypeBottom:    "https://via.placeholder.com/300x300/7ED321/FFFFFF?text=Bottom",
	models.ItemTypeShoes:     "https://via.placeholder.com/300x300/8B4513/FFFFFF?text=Shoes",
	models.ItemTypeAccessory: "https://via.placeholder.com/300x300/F5D547/333333?text=Accessory",
}

// UnknownPlaceholderImage is shown for item types without a dedicated placeholder.
const UnknownPlaceholderImage = "https://via.placeholder.com/300x300/9B9B9B/FFFFFF?text=Item"

// PlaceholderImage returns the image displayed when an item's own image fails to load.
func PlaceholderImage(t models.ItemType) string {
	if url, ok := placeholderImages[t]; ok {
		return url
	}
	return UnknownPlaceholderImage
}

// FromRemote maps the recommender's outfit shape onto models.Outfit. Missing
// identifiers are synthesized from list positions; text is stripped of invalid UTF-8.
func FromRemote(recs []dto.RemoteOutfit) []models.Outfit {
	outfits := make([]models.Outfit, 0, len(recs))
	for i, rec := range recs {
		id := rec.OutfitID
		if id == "" {
			id = fmt.Sprintf("rec_%d", i+1)
		}

		outfit := models.Outfit{
			ID:           id,
			Name:         sanitizeUTF8(rec.Name),
			Description:  sanitizeUTF8(rec.Description),
			TotalPrice:   int(rec.TotalPrice),
			Style:        rec.Style,
			ColorScheme:  rec.ColorScheme,
			TargetGender: rec.TargetGender,
			Items:        make([]models.OutfitItem, 0, len(rec.Items)),
		}
		for j, item := range rec.Items {
			outfit.Items = append(outfit.Items, models.OutfitItem{
				ID:       fmt.Sprintf("%s_item_%d", id, j+1),
				Name:     sanitizeUTF8(item.Name),
				Brand:    sanitizeUTF8(item.Brand),
				Price:    int(item.Price),
				ImageURL: item.ImageURL,
				Type:     models.ItemType(item.Type),
			})
		}
		outfits = append(outfits, outfit)
	}
	return outfits
}

// Normalize turns outfits from either source into the renderable contract.
// Prices pass through untouched.
func Normalize(outfits []models.Outfit) []dto.RenderableOutfit {
	out := make([]dto.RenderableOutfit, 0, len(outfits))
	for _, o := range outfits {
		r := dto.RenderableOutfit{
			ID:           o.ID,
			Name:         o.Name,
			Description:  o.Description,
			TotalPrice:   o.TotalPrice,
			ItemsTotal:   o.ItemsTotal(),
			Style:        o.Style,
			ColorScheme:  o.ColorScheme,
			TargetGender: o.TargetGender,
			Items:        make([]dto.RenderableItem, 0, len(o.Items)),
		}
		for _, item := range o.Items {
			ri := dto.RenderableItem{
				ID:               item.ID,
				Name:             item.Name,
				Brand:            item.Brand,
				Price:            item.Price,
				Type:             item.Type,
				ImageURL:         item.ImageURL,
				FallbackImageURL: PlaceholderImage(item.Type),
			}
			if ri.ImageURL == "" {
				ri.MarkImageFailed()
			}
			r.Items = append(r.Items, ri)
		}
		out = append(out, r)
	}
	return out
}
