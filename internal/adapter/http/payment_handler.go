package http

import (
	"net/http"
	"time"

	"lendbook/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type allocatePaymentReq struct {
	Amount float64 `json:"amount" validate:"gte=0,dec2"`
	Date   string  `json:"date"`
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req allocatePaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	var at time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
		}
		at = parsed
	}

	res, err := h.uc.Allocate(c.Request().Context(), c.Param("loan_id"), payment.AllocateInput{
		Amount: req.Amount,
		Date:   at,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}
