package services

import (
	"bytes"
	"fmt"

	"comercial/internal/models"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

// exportColumns is the header row of the spreadsheet, matching the field
// order of models.ExportRow.
var exportColumns = []string{"Cliente", "Produto", "Quantidade", "Total", "Data"}

// ExportService renders flattened purchase rows into downloadable files.
// It holds no state and performs no business logic.
type ExportService struct{}

// NewExportService creates a new ExportService.
func NewExportService() *ExportService {
	return &ExportService{}
}

// ExcelReport renders the rows as an xlsx workbook with a header row.
func (s *ExportService) ExcelReport(rows []models.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, header := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{row.Customer, row.Product, row.Quantity, row.Total, row.Date}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

// PDFReport renders the rows as sequential text lines in a paginated PDF,
// one line per purchase line. Page breaks are handled by the document.
func (s *ExportService) PDFReport(rows []models.ExportRow) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, tr("Relatório de Compras"), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		line := fmt.Sprintf("Cliente: %s | Produto: %s | Qtd: %d | Total: %.2f | Data: %s",
			row.Customer, row.Product, row.Quantity, row.Total, row.Date)
		pdf.MultiCell(0, 8, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize PDF: %w", err)
	}
	return buf.Bytes(), nil
}
