package router

import (
	"encoding/json"
	"net/http"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/labstack/echo/v4"
)

// locationHandler godoc
// @Summary Get a location
// @Tags locations
// @Produce json
// @Param office path string true "Owning office"
// @Param name path string true "Location name"
// @Success 200 {object} dto.Location
// @Failure 404 {object} apperr.Body
// @Router /locations/{office}/{name} [get]
func (r *HydroRouter) locationHandler(c echo.Context) error {
	loc, err := r.svc.Location(c.Request().Context(), c.Param("office"), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loc)
}

// createLocationHandler godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body dto.Location true "Location"
// @Success 201 {object} dto.Location
// @Failure 400 {object} apperr.Body
// @Failure 409 {object} apperr.Body
// @Router /locations [post]
func (r *HydroRouter) createLocationHandler(c echo.Context) error {
	var opts dto.LocationOptions
	if err := c.Bind(&opts); err != nil {
		return err
	}

	loc, err := r.svc.CreateLocation(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, loc)
}

// patchLocationHandler godoc
// @Summary Patch location properties
// @Description Sets properties by name, e.g. {"latitude": 38.7, "public-name": "Folsom Dam"}. A null value clears a property.
// @Tags locations
// @Accept json
// @Produce json
// @Param office path string true "Owning office"
// @Param name path string true "Location name"
// @Param properties body map[string]interface{} true "Property values"
// @Success 200 {object} dto.Location
// @Failure 400 {object} apperr.Body
// @Failure 404 {object} apperr.Body
// @Router /locations/{office}/{name} [patch]
func (r *HydroRouter) patchLocationHandler(c echo.Context) error {
	props := make(map[string]any)
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	if err := dec.Decode(&props); err != nil {
		return apperr.NewValidationWrap("invalid property body", err)
	}

	loc, err := r.svc.PatchLocation(c.Request().Context(), c.Param("office"), c.Param("name"), props)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loc)
}
