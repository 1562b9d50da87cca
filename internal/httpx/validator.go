package httpx

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("query"); name != "" {
			return name
		}
		return f.Name
	})
}

// Validate checks the `validate` tags of s. A failure is a
// validator.ValidationErrors whose field names come from the `query` tag.
func Validate(s any) error {
	return validate.Struct(s)
}
