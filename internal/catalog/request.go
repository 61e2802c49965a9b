package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"arbotique/internal/dto"
	"arbotique/internal/models"
)

// ParseRequest decodes a recommendation request field by field. A field with an
// unexpected type is left empty, so ApplyDefaults fills it, and the others
// still apply: numeric user IDs and ages sent as strings are both accepted.
// An error is returned only when body is not a JSON object.
func ParseRequest(body []byte) (dto.RecommendationRequest, error) {
	var req dto.RecommendationRequest
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return req, fmt.Errorf("failed to decode recommendation request: %w", err)
	}

	req.UserID = asString(raw["user_id"])
	req.Age = asInt(raw["age"])
	req.Gender = asString(raw["gender"])
	req.ColorPref = asString(raw["color_pref"])
	req.StylePref = asString(raw["style_pref"])
	req.Budget = asInt(raw["budget"])
	req.BodyType = asString(raw["body_type"])
	req.SkinTone = asString(raw["skin_tone"])

	if m, ok := raw["measurements"].(map[string]any); ok {
		req.Measurements = models.Measurements{
			Height: asString(m["height"]),
			Weight: asString(m["weight"]),
			Chest:  asString(m["chest"]),
			Waist:  asString(m["waist"]),
			Hips:   asString(m["hips"]),
		}
	}
	return req, nil
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// asInt truncates fractional values the way int() does for floats.
func asInt(v any) int {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return 0
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
