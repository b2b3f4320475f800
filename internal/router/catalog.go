package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/labstack/echo/v4"
)

// catalogHandler godoc
// @Summary List a catalog
// @Description Pages through locations or time series. After the first page the filters travel inside the cursor.
// @Tags catalog
// @Produce json
// @Param dataset path string true "locations or timeseries"
// @Param office query string false "Owning office"
// @Param like query string false "Name regex"
// @Param location-category-like query string false "Location group category regex"
// @Param location-group-like query string false "Location group regex"
// @Param timeseries-category-like query string false "Time series group category regex"
// @Param timeseries-group-like query string false "Time series group regex"
// @Param bounding-office-like query string false "Bounding office regex"
// @Param include-extents query bool false "Include time series extents"
// @Param exclude-empty query bool false "Skip time series without values"
// @Param page query string false "Page cursor"
// @Param page-size query int false "Page size"
// @Success 200 {object} dto.Catalog
// @Failure 400 {object} apperr.Body
// @Router /catalog/{dataset} [get]
func (r *HydroRouter) catalogHandler(c echo.Context) error {
	ds, err := query.ParseDataset(c.Param("dataset"))
	if err != nil {
		return apperr.NewValidationWrap("invalid dataset", err)
	}

	var f query.Catalog
	if err := c.Bind(&f); err != nil {
		return err
	}
	req, err := cursorRequest(c)
	if err != nil {
		return err
	}

	page, err := r.svc.Catalog(c.Request().Context(), ds, f, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}
