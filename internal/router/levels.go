package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/labstack/echo/v4"
)

// levelsHandler godoc
// @Summary List location levels
// @Tags levels
// @Produce json
// @Param office query string false "Owning office"
// @Param level-id-mask query string false "Level id mask"
// @Param page query string false "Page cursor"
// @Param page-size query int false "Page size"
// @Success 200 {object} dto.LocationLevels
// @Failure 400 {object} apperr.Body
// @Router /levels [get]
func (r *HydroRouter) levelsHandler(c echo.Context) error {
	var f query.Levels
	if err := c.Bind(&f); err != nil {
		return err
	}
	req, err := cursorRequest(c)
	if err != nil {
		return err
	}

	page, err := r.svc.Levels(c.Request().Context(), f, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// createLevelHandler godoc
// @Summary Store a location level
// @Description Replaces a level with the same office, id and effective date.
// @Tags levels
// @Accept json
// @Produce json
// @Param level body dto.LocationLevel true "Location level"
// @Success 201 {object} dto.LocationLevel
// @Failure 400 {object} apperr.Body
// @Router /levels [post]
func (r *HydroRouter) createLevelHandler(c echo.Context) error {
	var opts dto.LocationLevelOptions
	if err := c.Bind(&opts); err != nil {
		return err
	}

	level, err := r.svc.CreateLevel(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, level)
}
