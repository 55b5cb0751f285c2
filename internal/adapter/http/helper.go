package http

import (
	"errors"
	"net/http"
	"strings"

	domainClient "lendbook/internal/domain/client"
	domainLoan "lendbook/internal/domain/loan"
	domainPartner "lendbook/internal/domain/partner"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// writeError maps domain errors onto HTTP codes: rejected allocations are
// 422 (reason surfaced verbatim), missing records 404, invariant violations
// 409/400. Anything unrecognized is a 500.
func writeError(c echo.Context, err error) error {
	switch {
	case domainLoan.IsValidation(err):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainLoan.ErrNotFound),
		errors.Is(err, domainPartner.ErrNotFound),
		errors.Is(err, domainClient.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainLoan.ErrAlreadyPaid):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainLoan.ErrNegativeAmount),
		errors.Is(err, domainLoan.ErrBadTermUnit),
		errors.Is(err, domainPartner.ErrNonPositiveAmount):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
