package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// same validator configuration gin's binding layer uses
func validate(v interface{}) error {
	vd := validator.New()
	vd.SetTagName("binding")
	return vd.Struct(v)
}

func TestMessage_Skill(t *testing.T) {
	t.Run("proficiency out of range", func(t *testing.T) {
		err := validate(CreateSkillRequest{Name: "Rust", Category: "Backend", Proficiency: 101})
		assert.Equal(t, "proficiency must be between 1 and 100", Message(err))

		err = validate(CreateSkillRequest{Name: "Rust", Category: "Backend", Proficiency: 0})
		assert.Equal(t, "proficiency must be between 1 and 100", Message(err))
	})

	t.Run("bad category", func(t *testing.T) {
		err := validate(CreateSkillRequest{Name: "Rust", Category: "Databases", Proficiency: 70})
		assert.Equal(t, "category must be one of Frontend, Backend, 3D/Graphics, Tools, Other", Message(err))
	})

	t.Run("missing name", func(t *testing.T) {
		err := validate(CreateSkillRequest{Category: "Backend", Proficiency: 70})
		assert.Equal(t, "name is required", Message(err))
	})
}

func TestMessage_Project(t *testing.T) {
	t.Run("empty technologies", func(t *testing.T) {
		err := validate(CreateProjectRequest{Title: "t", Description: "d", Technologies: []string{}})
		assert.Equal(t, "at least one technology is required", Message(err))
	})

	t.Run("bad url", func(t *testing.T) {
		err := validate(CreateProjectRequest{
			Title: "t", Description: "d",
			Technologies: []string{"Go"},
			ImageURL:     "not a url",
		})
		assert.Equal(t, "imageUrl must be a valid URL", Message(err))
	})
}

func TestMessage_Contact(t *testing.T) {
	t.Run("short name", func(t *testing.T) {
		err := validate(CreateContactMessageRequest{Name: "J", Email: "jo@example.com", Message: "long enough message"})
		assert.Equal(t, "name must be at least 2 characters", Message(err))
	})

	t.Run("short message", func(t *testing.T) {
		err := validate(CreateContactMessageRequest{Name: "Jo", Email: "jo@example.com", Message: "short"})
		assert.Equal(t, "message must be at least 10 characters", Message(err))
	})

	t.Run("bad email", func(t *testing.T) {
		err := validate(CreateContactMessageRequest{Name: "Jo", Email: "not-an-email", Message: "long enough message"})
		assert.Equal(t, "invalid email address", Message(err))
	})
}

func TestMessage_NonValidationError(t *testing.T) {
	assert.Equal(t, "invalid request body", Message(errors.New("unexpected EOF")))
}
