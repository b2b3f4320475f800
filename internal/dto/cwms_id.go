package dto

import (
	"strings"

	"github.com/DjordjeVuckovic/hydro-api/internal/validation"
	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
)

// CwmsID identifies a named object within an office.
type CwmsID struct {
	OfficeID string `json:"office-id" yaml:"office-id"`
	Name     string `json:"name" yaml:"name"`
}

func (c CwmsID) ValidateFields(v *validation.Validator) {
	v.RequiredString(c.OfficeID, "office-id")
	v.RequiredString(c.Name, "name")
}

// Key joins office and name into the upper-cased composite key resources are
// ordered by.
func (c CwmsID) Key() string {
	return strings.ToUpper(c.OfficeID) + pagination.KeyDelimiter + strings.ToUpper(c.Name)
}
