package wizard

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"arbotique/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError lists user-facing problems per field. It blocks step advancement.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

// ValidateProfile checks the fields the wizard requires before the style quiz.
func ValidateProfile(p models.UserProfile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)

	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return "name is required"
	case "email":
		if fe.Tag() == "required" {
			return "email is required"
		}
		return "email must be a valid address"
	case "age":
		return "age must be between 16 and 100"
	case "gender":
		return "gender must be one of male, female, other"
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}
