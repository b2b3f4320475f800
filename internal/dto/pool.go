package dto

import (
	"strings"

	"github.com/DjordjeVuckovic/hydro-api/internal/validation"
	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
)

// Pool is a storage zone of a project bounded by two location levels.
type Pool struct {
	ProjectID     CwmsID   `json:"project-id" yaml:"project-id"`
	Name          string   `json:"name" yaml:"name"`
	BottomLevelID string   `json:"bottom-level-id" yaml:"bottom-level-id"`
	TopLevelID    string   `json:"top-level-id" yaml:"top-level-id"`
	Implicit      bool     `json:"implicit" yaml:"implicit"`
	Attribute     *float64 `json:"attribute,omitempty" yaml:"attribute"`
	Description   string   `json:"description,omitempty" yaml:"description"`
	ClobText      string   `json:"clob-text,omitempty" yaml:"clob-text"`
}

func (p *Pool) ValidateFields(v *validation.Validator) {
	v.Required(p.ProjectID, "project-id")
	v.RequiredString(p.Name, "name")
	v.RequiredString(p.BottomLevelID, "bottom-level-id")
	v.RequiredString(p.TopLevelID, "top-level-id")
}

// Key orders pools by office, project and pool name.
func (p Pool) Key() string {
	return p.ProjectID.Key() + pagination.KeyDelimiter + strings.ToUpper(p.Name)
}
