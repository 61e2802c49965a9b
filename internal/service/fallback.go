package service

import (
	"fmt"
	"strings"

	"arbotique/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type fallbackItem struct {
	typ   models.ItemType
	name  string
	brand string
	price int
}

type fallbackTemplate struct {
	id          string
	name        string
	description string
	style       string
	colorScheme string
	totalPrice  int
	items       []fallbackItem
}

// The streetwear total is lower than its item sum; totals are display data.
var (
	maleCasual = fallbackTemplate{
		id:          "fallback_1",
		name:        "%s Streetwear Look",
		description: "Trendy %s streetwear outfit for relaxed days out",
		style:       "streetwear",
		colorScheme: "blue",
		totalPrice:  8497,
		items: []fallbackItem{
			{models.ItemTypeTop, "Blue Streetwear Hoodie", "Urban Style", 2999},
			{models.ItemTypeBottom, "Black Denim Jeans", "Denim Co", 2499},
			{models.ItemTypeShoes, "White Sneakers", "Street Kicks", 3999},
		},
	}
	femaleCasual = fallbackTemplate{
		id:          "fallback_1",
		name:        "%s Summer Look",
		description: "Bright and comfortable %s summer outfit",
		style:       "casual",
		colorScheme: "yellow",
		totalPrice:  6797,
		items: []fallbackItem{
			{models.ItemTypeDress, "Yellow Summer Dress", "Sunny Style", 2299},
			{models.ItemTypeShoes, "Beige Flats", "Comfort Zone", 1999},
			{models.ItemTypeAccessory, "Brown Sunglasses", "Sun Style", 2499},
		},
	}
	maleFormal = fallbackTemplate{
		id:          "fallback_2",
		name:        "Formal Business Look",
		description: "Sharp office outfit with a %s touch",
		style:       "formal",
		colorScheme: "navy",
		totalPrice:  9397,
		items: []fallbackItem{
			{models.ItemTypeTop, "White Formal Shirt", "Office Wear", 1899},
			{models.ItemTypeBottom, "Navy Blue Trousers", "Formal Wear Co", 3499},
			{models.ItemTypeShoes, "Brown Formal Shoes", "Executive Style", 3999},
		},
	}
	femaleSporty = fallbackTemplate{
		id:          "fallback_2",
		name:        "Sporty Athletic Look",
		description: "Active outfit for workouts with a %s touch",
		style:       "sporty",
		colorScheme: "black",
		totalPrice:  7797,
		items: []fallbackItem{
			{models.ItemTypeTop, "Black Athletic Top", "Fit Gear", 1999},
			{models.ItemTypeBottom, "Black Sports Leggings", "Athletic Pro", 1299},
			{models.ItemTypeShoes, "White Running Shoes", "Athletic Pro", 4499},
		},
	}
)

// GenerateFallback returns the two offline outfits used when the recommender
// cannot be reached. Structure and prices depend only on whether gender is
// "male"; style only changes names and descriptions. Any other gender,
// including the empty string, gets the non-male templates.
func GenerateFallback(gender, style string) []models.Outfit {
	templates := []fallbackTemplate{femaleCasual, femaleSporty}
	if gender == string(models.GenderMale) {
		templates = []fallbackTemplate{maleCasual, maleFormal}
	}

	styleTitle := cases.Title(language.English).String(strings.TrimSpace(style))
	styleLower := strings.ToLower(strings.TrimSpace(style))

	outfits := make([]models.Outfit, 0, len(templates))
	imageIndex := 1
	for _, tpl := range templates {
		outfit := models.Outfit{
			ID:           tpl.id,
			Name:         fillStyle(tpl.name, styleTitle),
			Description:  fillStyle(tpl.description, styleLower),
			TotalPrice:   tpl.totalPrice,
			Style:        tpl.style,
			ColorScheme:  tpl.colorScheme,
			TargetGender: gender,
			Items:        make([]models.OutfitItem, 0, len(tpl.items)),
		}
		for i, item := range tpl.items {
			outfit.Items = append(outfit.Items, models.OutfitItem{
				ID:       fmt.Sprintf("%s_item_%d", tpl.id, i+1),
				Name:     item.name,
				Brand:    item.brand,
				Price:    item.price,
				ImageURL: placeholderPhoto(gender, imageIndex),
				Type:     item.typ,
			})
			imageIndex++
		}
		outfits = append(outfits, outfit)
	}
	return outfits
}

func fillStyle(format, style string) string {
	if !strings.Contains(format, "%s") {
		return format
	}
	return strings.Join(strings.Fields(fmt.Sprintf(format, style)), " ")
}

// placeholderPhoto is stable for a given gender and item index.
func placeholderPhoto(gender string, index int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s-%d/300/300", gender, index)
}
