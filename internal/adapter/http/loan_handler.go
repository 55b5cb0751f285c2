package http

import (
	"net/http"
	"time"

	"lendbook/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type contributionReq struct {
	PartnerID string  `json:"partner_id" validate:"required,hex32"`
	Amount    float64 `json:"amount" validate:"required,gt=0,dec2"`
	Rate      float64 `json:"rate" validate:"rate"`
}

type createLoanReq struct {
	ClientID           string            `json:"client_id" validate:"required,hex32"`
	RequestedAmount    float64           `json:"requested_amount" validate:"required,gt=0,dec2"`
	Contributions      []contributionReq `json:"contributions" validate:"required,min=1,dive"`
	TermValue          int               `json:"term_value" validate:"required,gt=0"`
	TermUnit           string            `json:"term_unit" validate:"required,termunit"`
	StartDate          string            `json:"start_date" validate:"required"`
	CollateralPhotoURL string            `json:"collateral_photo_url"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start_date must be YYYY-MM-DD"})
	}

	ins := make([]loan.ContributionInput, 0, len(req.Contributions))
	for _, cr := range req.Contributions {
		ins = append(ins, loan.ContributionInput{PartnerID: cr.PartnerID, Amount: cr.Amount, Rate: cr.Rate})
	}

	dto, err := h.uc.Originate(c.Request().Context(), loan.OriginateInput{
		ClientID:           req.ClientID,
		RequestedAmount:    req.RequestedAmount,
		Contributions:      ins,
		TermValue:          req.TermValue,
		TermUnit:           req.TermUnit,
		StartDate:          start,
		CollateralPhotoURL: req.CollateralPhotoURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context(), loan.ListFilter{
		State:     c.QueryParam("state"),
		PartnerID: c.QueryParam("partner_id"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
