package http

import (
	"net/http"
	"strconv"
	"time"

	"lendbook/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Monthly(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 1 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "year is required"})
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil || month < 1 || month > 12 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month must be 1-12"})
	}

	dto, err := h.uc.Monthly(c.Request().Context(), c.Param("partner_id"), year, time.Month(month))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReportHandler) TotalFunded(c echo.Context) error {
	dto, err := h.uc.TotalFunded(c.Request().Context(), c.Param("partner_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
