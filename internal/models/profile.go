package models

import "github.com/google/uuid"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Measurements are free-form strings exactly as the user typed them.
type Measurements struct {
	Height string `json:"height,omitempty"`
	Weight string `json:"weight,omitempty"`
	Chest  string `json:"chest,omitempty"`
	Waist  string `json:"waist,omitempty"`
	Hips   string `json:"hips,omitempty"`
}

type UserProfile struct {
	ID           string       `json:"id"`
	Name         string       `json:"name" validate:"required"`
	Email        string       `json:"email" validate:"required,email"`
	Age          int          `json:"age" validate:"gte=16,lte=100"`
	Gender       Gender       `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Measurements Measurements `json:"measurements"`
}

// NewUserProfile returns the profile a fresh wizard starts with.
func NewUserProfile() UserProfile {
	return UserProfile{
		ID:  uuid.NewString(),
		Age: 25,
	}
}
