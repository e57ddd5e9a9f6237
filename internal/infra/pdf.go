package infra

// pdf.go — printable ficha de pedido using go-pdf/fpdf.
// Generates an A5 sheet with:
//   - Business name header and folio
//   - Client and delivery data
//   - Status badges as plain text (estado, instalación, pago)
//   - Quantity / unit price / total block
//   - Audit trail lines
//   - The canonical deep link back to the detail screen
//
// The output file is saved to storagePath/ficha_{folio}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/model"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/status"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerarFichaPDF renders the printable sheet for a pedido.
// storagePath is the directory where the PDF will be written (created if
// needed). Returns the absolute path to the generated file.
func GenerarFichaPDF(p *model.Pedido, historial []model.HistorialPedido, enlace, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("ficha_%s.pdf", p.Folio)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "LONAS CADEREYTA", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr("Ficha de Pedido"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, p.Folio, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 4, p.FechaCreacion.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Client block ─────────────────────────────────────────────────────────
	campo := func(etiqueta, valor string) {
		if valor == "" {
			valor = "-"
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW*0.32, 5, tr(etiqueta), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW*0.68, 5, tr(valor), "", "L", false)
	}

	campo("Cliente:", p.Cliente)
	campo("Teléfono:", p.Telefono)
	campo("Dirección:", p.Direccion)
	campo("Descripción:", p.Descripcion)
	if p.Vendedor != nil {
		campo("Vendedor:", *p.Vendedor)
	}
	if p.FechaEntrega != nil {
		campo("Fecha entrega:", p.FechaEntrega.Format("02/01/2006"))
	}
	pdf.Ln(1)

	// ── Status block ─────────────────────────────────────────────────────────
	campo("Estado:", status.EstadoText(p.Estado))
	campo("Instalación:", status.InstalacionText(p.Instalacion))
	campo("Pago:", status.PagoText(p.Pago))
	arte := "No"
	if p.ArteAprobado {
		arte = "Sí"
	}
	campo("Arte aprobado:", arte)
	pdf.Ln(1)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Price block ──────────────────────────────────────────────────────────
	unitario := decimal.Zero
	if p.Cantidad > 0 {
		unitario = p.Precio.Div(decimal.NewFromInt(int64(p.Cantidad))).Round(2)
	}
	campo("Cantidad:", fmt.Sprintf("%d", p.Cantidad))
	campo("Precio unitario:", "$"+unitario.StringFixed(2))
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.32, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.68, 6, "$"+p.Precio.StringFixed(2), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Historial ────────────────────────────────────────────────────────────
	if len(historial) > 0 {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 5, "Historial", "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		for _, h := range historial {
			linea := fmt.Sprintf("%s — %s (%s)", h.Fecha.Format("02/01/2006 15:04"), h.Accion, h.Usuario)
			pdf.MultiCell(contentW, 4, tr(linea), "", "L", false)
		}
		pdf.Ln(2)
	}

	// ── Footer: deep link back to the detail screen ──────────────────────────
	pdf.SetFont("Helvetica", "I", 7)
	pdf.MultiCell(contentW, 4, tr(enlace), "", "C", false)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
