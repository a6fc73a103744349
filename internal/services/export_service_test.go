package services_test

import (
	"bytes"
	"testing"

	"comercial/internal/models"
	"comercial/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

var exportRows = []models.ExportRow{
	{Customer: "Maria Silva", Product: "Produto A", Quantity: 3, Total: 15.0, Date: "10/03/2025"},
	{Customer: "Maria Silva", Product: "Produto B", Quantity: 2, Total: 6.0, Date: "10/03/2025"},
}

func TestExportService_ExcelReport(t *testing.T) {
	service := services.NewExportService()

	data, err := service.ExcelReport(exportRows)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, header := range []string{"Cliente", "Produto", "Quantidade", "Total", "Data"} {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		assert.NoError(t, err)
		value, err := f.GetCellValue(sheet, cell)
		assert.NoError(t, err)
		assert.Equal(t, header, value)
	}

	customer, err := f.GetCellValue(sheet, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "Maria Silva", customer)
	product, err := f.GetCellValue(sheet, "B3")
	assert.NoError(t, err)
	assert.Equal(t, "Produto B", product)
	date, err := f.GetCellValue(sheet, "E2")
	assert.NoError(t, err)
	assert.Equal(t, "10/03/2025", date)
}

func TestExportService_ExcelReport_NoRows(t *testing.T) {
	service := services.NewExportService()

	data, err := service.ExcelReport(nil)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	// Header row still present even with no purchases.
	value, err := f.GetCellValue(f.GetSheetName(0), "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Cliente", value)
}

func TestExportService_PDFReport(t *testing.T) {
	service := services.NewExportService()

	data, err := service.PDFReport(exportRows)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportService_PDFReport_NoRows(t *testing.T) {
	service := services.NewExportService()

	data, err := service.PDFReport(nil)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
