package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Body is the JSON shape of every error response.
type Body struct {
	Title   string              `json:"title,omitempty"`
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := Render(err)
		if status >= http.StatusInternalServerError {
			slog.Error("Unhandled error", "error", err, "uri", c.Request().RequestURI)
		}
		_ = c.JSON(status, body)
	}
}

// Render maps an error to its HTTP status and response body.
func Render(err error) (int, Body) {
	if errors.Is(err, pagination.ErrInvalidCursor) {
		return http.StatusBadRequest, Body{Title: "invalid cursor", Error: err.Error()}
	}

	if details := Details(err); len(details) > 0 {
		return http.StatusBadRequest, Body{Title: "validation error", Error: err.Error(), Details: details}
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make([]string, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, fe.Field())
		}
		return http.StatusBadRequest, Body{
			Title:   "validation error",
			Error:   err.Error(),
			Details: map[string][]string{InvalidFieldsKey: fields},
		}
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, Body{Title: "validation error", Error: ve.Message}
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, Body{Title: "not found", Error: nf.Error()}
	}

	var ce *ConflictError
	if errors.As(err, &ce) {
		return http.StatusConflict, Body{Title: "conflict", Error: ce.Error()}
	}

	var be *echo.BindingError
	if errors.As(err, &be) {
		return http.StatusBadRequest, Body{
			Title:   "validation error",
			Error:   fmt.Sprintf("%v", be.Message),
			Details: map[string][]string{InvalidFieldsKey: {be.Field}},
		}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, Body{Error: fmt.Sprintf("%v", he.Message)}
	}

	return http.StatusInternalServerError, Body{Error: "internal server error"}
}

// Details merges the field lists of every DetailedError in err's tree,
// including errors combined with errors.Join.
func Details(err error) map[string][]string {
	details := make(map[string][]string)

	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if de, ok := e.(DetailedError); ok {
			details[de.DetailKey()] = append(details[de.DetailKey()], de.DetailFields()...)
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)

	return details
}
