package pagination

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports query parameter names instead of struct field names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.Split(f.Tag.Get("query"), ",")[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// CursorRequest represents a cursor-based pagination request
type CursorRequest struct {
	Cursor *string `json:"page,omitempty" query:"page"`
	Size   int     `json:"page-size" query:"page-size" validate:"min=0,max=10000"`
}

// Validate validates and normalizes cursor pagination parameters
func (r *CursorRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Cursor != nil && *r.Cursor == "" {
		r.Cursor = nil
	}
	if r.Size == 0 {
		r.Size = PageDefaultSize
	}
	return nil
}

// First reports whether the request asks for the first page.
func (r *CursorRequest) First() bool {
	return r.Cursor == nil || *r.Cursor == ""
}
