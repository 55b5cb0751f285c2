package http

import (
	"net/http"

	"lendbook/internal/usecase/client"

	"github.com/labstack/echo/v4"
)

type ClientHandler struct{ uc *client.Usecase }

func NewClientHandler(uc *client.Usecase) *ClientHandler { return &ClientHandler{uc: uc} }

type registerClientReq struct {
	Name       string `json:"name" validate:"required"`
	NationalID string `json:"national_id" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address"`
	ReferredBy string `json:"referred_by"`
}

func (h *ClientHandler) RegisterClient(c echo.Context) error {
	var req registerClientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Register(c.Request().Context(), client.RegisterClientInput{
		Name:       req.Name,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		ReferredBy: req.ReferredBy,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClientHandler) ListClients(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
