package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/labstack/echo/v4"
)

// clobsHandler godoc
// @Summary List clobs
// @Tags clobs
// @Produce json
// @Param office query string false "Owning office"
// @Param like query string false "Id regex"
// @Param include-values query bool false "Include clob text"
// @Param page query string false "Page cursor"
// @Param page-size query int false "Page size"
// @Success 200 {object} dto.Clobs
// @Failure 400 {object} apperr.Body
// @Router /clobs [get]
func (r *HydroRouter) clobsHandler(c echo.Context) error {
	var f query.Clobs
	if err := c.Bind(&f); err != nil {
		return err
	}
	req, err := cursorRequest(c)
	if err != nil {
		return err
	}

	page, err := r.svc.Clobs(c.Request().Context(), f, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// clobHandler godoc
// @Summary Get a clob
// @Tags clobs
// @Produce json
// @Param office path string true "Owning office"
// @Param id path string true "Clob id"
// @Success 200 {object} dto.Clob
// @Failure 404 {object} apperr.Body
// @Router /clobs/{office}/{id} [get]
func (r *HydroRouter) clobHandler(c echo.Context) error {
	clob, err := r.svc.Clob(c.Request().Context(), c.Param("office"), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clob)
}

// createClobHandler godoc
// @Summary Create a clob
// @Tags clobs
// @Accept json
// @Param clob body dto.Clob true "Clob"
// @Success 201
// @Failure 400 {object} apperr.Body
// @Failure 409 {object} apperr.Body
// @Router /clobs [post]
func (r *HydroRouter) createClobHandler(c echo.Context) error {
	var clob dto.Clob
	if err := c.Bind(&clob); err != nil {
		return err
	}
	if err := r.svc.CreateClob(c.Request().Context(), clob); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// blobsHandler godoc
// @Summary List blobs
// @Description Blob contents are never listed.
// @Tags blobs
// @Produce json
// @Param office query string false "Owning office"
// @Param like query string false "Id regex"
// @Param page query string false "Page cursor"
// @Param page-size query int false "Page size"
// @Success 200 {object} dto.Blobs
// @Failure 400 {object} apperr.Body
// @Router /blobs [get]
func (r *HydroRouter) blobsHandler(c echo.Context) error {
	var f query.Blobs
	if err := c.Bind(&f); err != nil {
		return err
	}
	req, err := cursorRequest(c)
	if err != nil {
		return err
	}

	page, err := r.svc.Blobs(c.Request().Context(), f, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}
