package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/obra-offline/internal/application/analytics"
	"github.com/jhoicas/obra-offline/internal/application/reports"
)

// ReportHandler descargas de reportes.
type ReportHandler struct {
	uc *reports.FinancialReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.FinancialReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// FinancialPDF godoc
// @Summary      Estado financiero en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        companyId  query  int  false  "Empresa (por defecto 1)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/financial [get]
func (h *ReportHandler) FinancialPDF(c *fiber.Ctx) error {
	companyID, err := queryInt64(c, "companyId")
	if err != nil {
		return badQuery(c, err)
	}
	id := appanalytics.DefaultCompanyID
	if companyID != nil {
		id = *companyID
	}
	data, filename, err := h.uc.DownloadPDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
