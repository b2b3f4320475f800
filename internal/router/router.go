package router

import (
	"github.com/DjordjeVuckovic/hydro-api/internal/listing"
	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type HydroRouter struct {
	e   *echo.Echo
	svc *listing.Service
}

func NewHydroRouter(e *echo.Echo, svc *listing.Service) *HydroRouter {
	return &HydroRouter{
		e:   e,
		svc: svc,
	}
}

func (r *HydroRouter) Bind() {
	r.e.GET("/catalog/:dataset", r.catalogHandler)

	r.e.GET("/clobs", r.clobsHandler)
	r.e.GET("/clobs/:office/:id", r.clobHandler)
	r.e.POST("/clobs", r.createClobHandler)
	r.e.GET("/blobs", r.blobsHandler)

	r.e.GET("/pools", r.poolsHandler)

	r.e.GET("/levels", r.levelsHandler)
	r.e.POST("/levels", r.createLevelHandler)

	r.e.GET("/timeseries", r.timeSeriesHandler)
	r.e.GET("/timeseries/identifiers", r.descriptorsHandler)

	r.e.GET("/locations/:office/:name", r.locationHandler)
	r.e.POST("/locations", r.createLocationHandler)
	r.e.PATCH("/locations/:office/:name", r.patchLocationHandler)

	r.e.GET("/offices/types", r.officeTypesHandler)
}

// cursorRequest reads ?page= and ?page-size= and applies the defaults.
func cursorRequest(c echo.Context) (pagination.CursorRequest, error) {
	var cursor string
	var req pagination.CursorRequest

	err := echo.QueryParamsBinder(c).
		String("page", &cursor).
		Int("page-size", &req.Size).
		BindError()
	if err != nil {
		return req, err
	}
	if cursor != "" {
		req.Cursor = &cursor
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}
