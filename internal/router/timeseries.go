package router

import (
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/labstack/echo/v4"
)

// timeSeriesHandler godoc
// @Summary Get time series values
// @Description Pages through the values of one series. Later pages must repeat begin and end.
// @Tags timeseries
// @Produce json
// @Param office query string true "Owning office"
// @Param name query string true "Time series id"
// @Param begin query string false "RFC 3339 start, default 24 hours before end"
// @Param end query string false "RFC 3339 end, default now"
// @Param page query string false "Page cursor"
// @Param page-size query int false "Page size"
// @Success 200 {object} dto.TimeSeries
// @Failure 400 {object} apperr.Body
// @Failure 404 {object} apperr.Body
// @Router /timeseries [get]
func (r *HydroRouter) timeSeriesHandler(c echo.Context) error {
	var f query.TimeSeries
	err := echo.QueryParamsBinder(c).
		String("office", &f.Office).
		String("name", &f.Name).
		Time("begin", &f.Begin, time.RFC3339).
		Time("end", &f.End, time.RFC3339).
		BindError()
	if err != nil {
		return err
	}
	req, err := cursorRequest(c)
	if err != nil {
		return err
	}

	series, err := r.svc.TimeSeries(c.Request().Context(), f, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}

// descriptorsHandler godoc
// @Summary List time series identifiers
// @Tags timeseries
// @Produce json
// @Param office query string false "Owning office"
// @Param timeseries-id-regex query string false "Time series id regex"
// @Param page query string false "Page cursor"
// @Param page-size query int false "Page size"
// @Success 200 {object} dto.TimeSeriesIdentifierDescriptors
// @Failure 400 {object} apperr.Body
// @Router /timeseries/identifiers [get]
func (r *HydroRouter) descriptorsHandler(c echo.Context) error {
	var f query.Descriptors
	if err := c.Bind(&f); err != nil {
		return err
	}
	req, err := cursorRequest(c)
	if err != nil {
		return err
	}

	page, err := r.svc.Descriptors(c.Request().Context(), f, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}
