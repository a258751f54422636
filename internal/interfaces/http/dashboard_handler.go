package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libroya-api/internal/application/dashboard"
	"github.com/jhoicas/libroya-api/internal/application/dto"
	"github.com/jhoicas/libroya-api/internal/domain"
)

// DashboardHandler maneja los endpoints del dashboard del vendedor.
type DashboardHandler struct {
	uc       *dashboard.UseCase
	exportUC *dashboard.ExportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase, exportUC *dashboard.ExportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, exportUC: exportUC}
}

// GetDashboard godoc
// @Summary      Dashboard financiero y operativo del vendedor
// @Description  Resumen de pedidos y ganancia propia en la ventana de fechas,
//               más la lista de pedidos con solo las líneas del vendedor.
//               Fechas inválidas degradan a los últimos 30 días.
// @Tags         seller
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Fin del período (YYYY-MM-DD, día completo incluido)"
// @Success      200  {object}  dto.SellerDashboardDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/seller/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token",
		})
	}

	report, err := h.uc.Build(
		c.Context(), sellerID,
		c.Query("startDate"), c.Query("endDate"),
		time.Now(),
	)
	if err != nil {
		// Fallo upstream (DB): 5xx, nunca un resultado parcial.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(report)
}

// ExportDashboard godoc
// @Summary      Exportar el dashboard del vendedor a PDF
// @Tags         seller
// @Security     Bearer
// @Produce      application/pdf
// @Param        startDate  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Fin del período (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/seller/dashboard/export [get]
func (h *DashboardHandler) ExportDashboard(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token",
		})
	}

	pdfBytes, filename, err := h.exportUC.ExportPDF(
		c.Context(), sellerID,
		c.Query("startDate"), c.Query("endDate"),
		time.Now(),
	)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
