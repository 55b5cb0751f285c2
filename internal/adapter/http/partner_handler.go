package http

import (
	"net/http"

	"lendbook/internal/usecase/partner"

	"github.com/labstack/echo/v4"
)

type PartnerHandler struct{ uc *partner.Usecase }

func NewPartnerHandler(uc *partner.Usecase) *PartnerHandler { return &PartnerHandler{uc: uc} }

type createPartnerReq struct {
	Name           string  `json:"name" validate:"required"`
	InitialCapital float64 `json:"initial_capital" validate:"gte=0,dec2"`
}

type topUpReq struct {
	Amount      float64 `json:"amount" validate:"required,gt=0,dec2"`
	Description string  `json:"description"`
}

func (h *PartnerHandler) CreatePartner(c echo.Context) error {
	var req createPartnerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), partner.CreatePartnerInput{
		Name:           req.Name,
		InitialCapital: req.InitialCapital,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PartnerHandler) TopUp(c echo.Context) error {
	var req topUpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.TopUp(c.Request().Context(), c.Param("partner_id"), partner.TopUpInput{
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PartnerHandler) GetPartner(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("partner_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PartnerHandler) ListPartners(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
