package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/libroya-api/internal/application/dto"
	"github.com/jhoicas/libroya-api/internal/domain"
	"github.com/jhoicas/libroya-api/internal/domain/repository"
)

// PDFGenerator puerto para el render del reporte del dashboard (adaptador en
// internal/infrastructure/pdf).
type PDFGenerator interface {
	GenerateDashboardPDF(
		ctx context.Context,
		sellerName string,
		win Window,
		report *dto.SellerDashboardDTO,
	) ([]byte, error)
}

// ExportUseCase genera el reporte PDF del dashboard de un vendedor.
type ExportUseCase struct {
	dashboard *UseCase
	userRepo  repository.UserRepository
	generator PDFGenerator
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(dashboard *UseCase, userRepo repository.UserRepository, generator PDFGenerator) *ExportUseCase {
	return &ExportUseCase{dashboard: dashboard, userRepo: userRepo, generator: generator}
}

// ExportPDF construye el dashboard con la misma semántica que Build y lo
// renderiza a PDF. Devuelve los bytes y un nombre de archivo sugerido.
func (uc *ExportUseCase) ExportPDF(
	ctx context.Context,
	sellerID, rawStart, rawEnd string,
	now time.Time,
) (pdfBytes []byte, filename string, err error) {
	seller, err := uc.userRepo.GetByID(sellerID)
	if err != nil {
		return nil, "", fmt.Errorf("export: obtener vendedor: %w", err)
	}
	if seller == nil {
		return nil, "", domain.ErrNotFound
	}

	report, err := uc.dashboard.Build(ctx, sellerID, rawStart, rawEnd, now)
	if err != nil {
		return nil, "", err
	}

	win := ResolveWindow(rawStart, rawEnd, now)
	pdf, err := uc.generator.GenerateDashboardPDF(ctx, seller.Name, win, report)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar PDF: %w", err)
	}

	filename = fmt.Sprintf("dashboard_%s_%s.pdf",
		win.Start.Format("20060102"), win.End.Format("20060102"))
	return pdf, filename, nil
}
