package dto

import (
	"github.com/DjordjeVuckovic/hydro-api/internal/validation"
)

// Clob is a named text object.
type Clob struct {
	OfficeID    string `json:"office-id" yaml:"office-id"`
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description"`
	Value       string `json:"value,omitempty" yaml:"value"`
}

func (c *Clob) ValidateFields(v *validation.Validator) {
	v.RequiredString(c.OfficeID, "office-id")
	v.RequiredString(c.ID, "id")
}

func (c Clob) Key() string {
	return CwmsID{OfficeID: c.OfficeID, Name: c.ID}.Key()
}

// Blob is a named binary object with a media type.
type Blob struct {
	OfficeID    string `json:"office-id" yaml:"office-id"`
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description"`
	MediaTypeID string `json:"media-type-id" yaml:"media-type-id"`
	Value       []byte `json:"value,omitempty" yaml:"value"`
}

func (b *Blob) ValidateFields(v *validation.Validator) {
	v.RequiredString(b.OfficeID, "office-id")
	v.RequiredString(b.ID, "id")
	v.RequiredString(b.MediaTypeID, "media-type-id")
}

func (b Blob) Key() string {
	return CwmsID{OfficeID: b.OfficeID, Name: b.ID}.Key()
}
