package infra

// pdf.go — sales-report PDF rendering using go-pdf/fpdf.
// A4 portrait: company header, date range, the three summary totals, and the
// top-products table. The output file is saved to storagePath/informe_{desde}_{hasta}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateInformePDF writes the summary report as a PDF and returns its path.
func GenerateInformePDF(res *dto.InformeResumenResponse, empresaNombre, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio: %w", err)
	}

	fileName := fmt.Sprintf("informe_%s_%s.pdf", res.FechaDesde, res.FechaHasta)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, empresaNombre, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Informe de ventas %s a %s", res.FechaDesde, res.FechaHasta), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Pedidos entregados: %d", res.TotalPedidos), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Clientes atendidos: %d", res.TotalClientes), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total vendido: $%s", res.TotalVentas.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Top products table
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(100, 8, "Producto", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Cantidad", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range res.TopProductos {
		pdf.CellFormat(100, 7, p.Descripcion, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", p.Cantidad), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, "$"+p.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	return filePath, nil
}
