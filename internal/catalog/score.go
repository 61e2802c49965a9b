package catalog

import (
	"sort"
	"strconv"
	"strings"

	"arbotique/internal/dto"
)

const DefaultTopK = 8

// Defaults the catalog backend applies to missing request fields.
const (
	DefaultAge    = 25
	DefaultGender = "male"
	DefaultColor  = "blue"
	DefaultStyle  = "casual"
	DefaultBudget = 5000
)

// ApplyDefaults fills the fields the scorer needs.
func ApplyDefaults(req *dto.RecommendationRequest) {
	if req.Age <= 0 {
		req.Age = DefaultAge
	}
	if req.Gender == "" {
		req.Gender = DefaultGender
	}
	if req.ColorPref == "" {
		req.ColorPref = DefaultColor
	}
	if req.StylePref == "" {
		req.StylePref = DefaultStyle
	}
	if req.Budget <= 0 {
		req.Budget = DefaultBudget
	}
}

// Score rates one outfit for a request. Higher is better; the value can be negative.
func Score(outfit dto.RemoteOutfit, req dto.RecommendationRequest) float64 {
	gender := strings.ToLower(req.Gender)
	style := strings.ToLower(req.StylePref)
	color := strings.ToLower(req.ColorPref)
	category := strings.ToLower(outfit.Style)
	scheme := strings.ToLower(outfit.ColorScheme)

	score := 0.0

	if outfit.TargetGender == "unisex" || outfit.TargetGender == gender {
		score += 50
	} else {
		score -= 30
	}

	switch {
	case category == style:
		score += 40
	case strings.Contains(category, style):
		score += 20
	}

	switch {
	case scheme == color:
		score += 30
	case strings.Contains(scheme, color):
		score += 15
	}

	if lo, hi, ok := parseAgeRange(outfit.TargetAge); ok {
		switch {
		case req.Age >= lo && req.Age <= hi:
			score += 20
		case abs(req.Age-lo) <= 5 || abs(req.Age-hi) <= 5:
			score += 10
		}
	}

	budget := float64(req.Budget)
	price := float64(outfit.TotalPrice)
	switch {
	case price <= budget*0.5:
		score += 15
	case price <= budget:
		score += 10
	default:
		score -= 20
	}

	if outfit.InStock {
		score += 10
	} else {
		score -= 30
	}

	return score
}

// Recommend scores every catalog outfit and returns the best k, highest score
// first. Ties keep catalog order.
func Recommend(outfits []dto.RemoteOutfit, req dto.RecommendationRequest, k int) []dto.RemoteOutfit {
	if k <= 0 {
		k = DefaultTopK
	}
	ApplyDefaults(&req)

	scored := make([]dto.RemoteOutfit, len(outfits))
	for i, o := range outfits {
		o.Score = Score(o, req)
		scored[i] = o
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

func parseAgeRange(s string) (int, int, bool) {
	loStr, hiStr, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(strings.TrimSpace(loStr))
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.Atoi(strings.TrimSpace(hiStr))
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
