package router

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
)

type officeType struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// officeTypesHandler godoc
// @Summary List office types
// @Tags offices
// @Produce json
// @Success 200 {array} officeType
// @Router /offices/types [get]
func (r *HydroRouter) officeTypesHandler(c echo.Context) error {
	types := make([]officeType, 0, len(dto.OfficeTypes))
	for code, desc := range dto.OfficeTypes {
		types = append(types, officeType{Code: code, Description: desc})
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].Code < types[j].Code
	})
	return c.JSON(http.StatusOK, types)
}
