package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libroya-api/internal/application/accounts"
	"github.com/jhoicas/libroya-api/internal/application/dto"
	"github.com/jhoicas/libroya-api/internal/domain"
)

// AccountHandler maneja los endpoints de la cuenta propia (/api/users/me).
type AccountHandler struct {
	uc *accounts.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *accounts.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// GetProfile devuelve el perfil del usuario autenticado.
// GET /api/users/me
func (h *AccountHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(GetUserID(c))
	if err != nil {
		return accountError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile actualiza nombre/email/contraseña del usuario autenticado.
// PUT /api/users/me
func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NewPassword != "" && len(in.NewPassword) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la nueva contraseña debe tener al menos 8 caracteres"})
	}
	out, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		return accountError(c, err)
	}
	return c.JSON(out)
}

// ListMyOrders devuelve el historial de pedidos del comprador.
// GET /api/users/me/orders
func (h *AccountHandler) ListMyOrders(c *fiber.Ctx) error {
	out, err := h.uc.ListMyOrders(c.Context(), GetUserID(c))
	if err != nil {
		return accountError(c, err)
	}
	return c.JSON(out)
}

// GetLibrary devuelve la biblioteca de libros comprados.
// GET /api/users/me/library
func (h *AccountHandler) GetLibrary(c *fiber.Ctx) error {
	out, err := h.uc.GetLibrary(c.Context(), GetUserID(c))
	if err != nil {
		return accountError(c, err)
	}
	return c.JSON(out)
}

// accountError mapea errores de dominio a códigos HTTP.
func accountError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "contraseña actual incorrecta"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
