package handler

import (
	"log/slog"
	"net/http"

	"warrantly/internal/delivery/http/middleware"
	"warrantly/internal/delivery/http/response"
	"warrantly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WarrantyHandler holds dependencies for warranty-related handlers.
type WarrantyHandler struct {
	uc     usecase.WarrantyUsecase
	logger *slog.Logger
}

// NewWarrantyHandler is the constructor for WarrantyHandler, injected by Fx.
func NewWarrantyHandler(uc usecase.WarrantyUsecase, logger *slog.Logger) *WarrantyHandler {
	return &WarrantyHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the warranty creation request for the authenticated owner.
func (h *WarrantyHandler) Create(c echo.Context) error {
	var input *usecase.CreateWarrantyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid warranty input")
	}
	// Bind leaves the pointer nil when the body is empty.
	if input == nil {
		input = &usecase.CreateWarrantyInput{}
	}

	ownerID := middleware.UserIDFromContext(c)

	output, err := h.uc.CreateWarranty(c.Request().Context(), ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Warranty created successfully")
}

// List handles listing the authenticated owner's warranties, newest first.
func (h *WarrantyHandler) List(c echo.Context) error {
	ownerID := middleware.UserIDFromContext(c)

	outputs, err := h.uc.ListWarranties(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "Warranties retrieved successfully")
}
