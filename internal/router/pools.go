package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/labstack/echo/v4"
)

// poolsHandler godoc
// @Summary List pools
// @Tags pools
// @Produce json
// @Param office query string false "Owning office"
// @Param project-id-mask query string false "Project id mask"
// @Param name-mask query string false "Pool name mask"
// @Param bottom-level-mask query string false "Bottom level mask"
// @Param top-level-mask query string false "Top level mask"
// @Param include-explicit query bool false "Include explicit pools" default(true)
// @Param include-implicit query bool false "Include implicit pools" default(true)
// @Param page query string false "Page cursor"
// @Param page-size query int false "Page size"
// @Success 200 {object} dto.Pools
// @Failure 400 {object} apperr.Body
// @Router /pools [get]
func (r *HydroRouter) poolsHandler(c echo.Context) error {
	f := query.Pools{IncludeExplicit: true, IncludeImplicit: true}
	if err := c.Bind(&f); err != nil {
		return err
	}
	req, err := cursorRequest(c)
	if err != nil {
		return err
	}

	page, err := r.svc.Pools(c.Request().Context(), f, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}
