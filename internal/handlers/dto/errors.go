package dto

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Message turns a binding error into the human-readable description of
// the violated constraint, e.g. "proficiency must be between 1 and 100".
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	return fieldMessage(verrs[0])
}

func fieldMessage(fe validator.FieldError) string {
	field := jsonName(fe.Field())

	switch {
	case fe.Field() == "Technologies":
		return "at least one technology is required"
	case fe.Field() == "Proficiency":
		return "proficiency must be between 1 and 100"
	case fe.Field() == "Category" && fe.Tag() == "oneof":
		return "category must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case fe.Tag() == "email":
		return "invalid email address"
	case fe.Tag() == "url":
		return field + " must be a valid URL"
	case fe.Tag() == "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case fe.Tag() == "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case fe.Tag() == "required":
		return field + " is required"
	}
	return field + " is invalid"
}

// jsonName maps a Go field name onto its json tag form, e.g.
// ImageURL -> imageUrl.
func jsonName(goField string) string {
	if goField == "" {
		return goField
	}
	if strings.HasSuffix(goField, "URL") {
		goField = strings.TrimSuffix(goField, "URL") + "Url"
	}
	r := []rune(goField)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
