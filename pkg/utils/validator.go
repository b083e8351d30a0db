package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

var imageDataURIPattern = regexp.MustCompile(`^data:image/[a-zA-Z]+;base64,`)

func NewValidator() *Validator {
	v := validator.New()

	v.RegisterValidation("image_data_uri", validateImageDataURI)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Inline images must arrive as data:image/<format>;base64,<payload>.
func validateImageDataURI(fl validator.FieldLevel) bool {
	return imageDataURIPattern.MatchString(fl.Field().String())
}
