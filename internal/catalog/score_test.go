package catalog

import (
	"testing"

	"arbotique/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var req dto.RecommendationRequest
	ApplyDefaults(&req)

	assert.Equal(t, DefaultAge, req.Age)
	assert.Equal(t, DefaultGender, req.Gender)
	assert.Equal(t, DefaultColor, req.ColorPref)
	assert.Equal(t, DefaultStyle, req.StylePref)
	assert.Equal(t, DefaultBudget, req.Budget)
}

func TestScore(t *testing.T) {
	outfit := dto.RemoteOutfit{
		Style:        "casual",
		ColorScheme:  "yellow",
		TotalPrice:   6797,
		TargetGender: "female",
		TargetAge:    "18-30",
		InStock:      true,
	}

	tests := []struct {
		name string
		req  dto.RecommendationRequest
		want float64
	}{
		{
			name: "full match within budget",
			req:  dto.RecommendationRequest{Age: 25, Gender: "female", ColorPref: "yellow", StylePref: "casual", Budget: 10000},
			want: 50 + 40 + 30 + 20 + 10 + 10,
		},
		{
			name: "cheap for budget",
			req:  dto.RecommendationRequest{Age: 25, Gender: "female", ColorPref: "yellow", StylePref: "casual", Budget: 20000},
			want: 50 + 40 + 30 + 20 + 15 + 10,
		},
		{
			name: "wrong gender over budget",
			req:  dto.RecommendationRequest{Age: 25, Gender: "male", ColorPref: "yellow", StylePref: "casual", Budget: 5000},
			want: -30 + 40 + 30 + 20 - 20 + 10,
		},
		{
			name: "partial style and color, age nearby",
			req:  dto.RecommendationRequest{Age: 34, Gender: "female", ColorPref: "yell", StylePref: "cas", Budget: 10000},
			want: 50 + 20 + 15 + 10 + 10 + 10,
		},
		{
			name: "case insensitive preferences",
			req:  dto.RecommendationRequest{Age: 25, Gender: "female", ColorPref: "Yellow", StylePref: "CASUAL", Budget: 10000},
			want: 160,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(outfit, tt.req))
		})
	}
}

func TestScore_OutOfStockAndUnisex(t *testing.T) {
	req := dto.RecommendationRequest{Age: 60, Gender: "other", ColorPref: "red", StylePref: "formal", Budget: 10000}
	outfit := dto.RemoteOutfit{Style: "sporty", ColorScheme: "black", TotalPrice: 9000, TargetGender: "unisex", TargetAge: "16-40"}

	assert.Equal(t, float64(50+10-30), Score(outfit, req))
}

func TestRecommend_Ranking(t *testing.T) {
	req := dto.RecommendationRequest{Age: 25, Gender: "female", ColorPref: "yellow", StylePref: "casual", Budget: 10000}

	recs := Recommend(Outfits(), req, 3)

	require.Len(t, recs, 3)
	assert.Equal(t, "outfit_005", recs[0].OutfitID)
	assert.Equal(t, float64(160), recs[0].Score)
	assert.Equal(t, "outfit_007", recs[1].OutfitID)
	assert.Equal(t, "outfit_008", recs[2].OutfitID)
}

func TestRecommend_DefaultsAndTopK(t *testing.T) {
	recs := Recommend(Outfits(), dto.RecommendationRequest{}, 0)

	require.Len(t, recs, len(Outfits()))
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
	assert.Equal(t, "outfit_007", recs[0].OutfitID)
}

func TestRecommend_DoesNotMutateCatalog(t *testing.T) {
	outfits := Outfits()
	_ = Recommend(outfits, dto.RecommendationRequest{Gender: "female"}, 2)

	assert.Equal(t, Outfits(), outfits)
}

func TestParseAgeRange(t *testing.T) {
	lo, hi, ok := parseAgeRange("18-30")
	assert.True(t, ok)
	assert.Equal(t, 18, lo)
	assert.Equal(t, 30, hi)

	_, _, ok = parseAgeRange("adult")
	assert.False(t, ok)
	_, _, ok = parseAgeRange("x-30")
	assert.False(t, ok)
}

func TestOutfits_Complete(t *testing.T) {
	for _, o := range Outfits() {
		assert.NotEmpty(t, o.OutfitID)
		assert.NotEmpty(t, o.Items, o.OutfitID)
		for _, item := range o.Items {
			assert.NotEmpty(t, item.ImageURL)
		}
	}
}
