package models

// ProductSales is one row of the sales-by-product report.
type ProductSales struct {
	Product      string `json:"produto"`
	QuantitySold int    `json:"quantidade_vendida"`
}

// CustomerSales is one row of the sales-by-customer report.
type CustomerSales struct {
	Customer   string  `json:"cliente"`
	TotalSpent float64 `json:"total_compras"`
}

// PurchaseLineSummary is a purchase line expanded with its product name.
type PurchaseLineSummary struct {
	Product  string  `json:"produto"`
	Quantity int     `json:"quantidade"`
	Total    float64 `json:"total"`
}

// PurchaseSummary is one purchase of the history listing, newest first,
// with the date rendered as dd/mm/yyyy.
type PurchaseSummary struct {
	ID       uint                  `json:"id"`
	Customer string                `json:"cliente"`
	Total    float64               `json:"total"`
	Date     string                `json:"data"`
	Items    []PurchaseLineSummary `json:"itens"`
}

// GeneralReport combines both groupings with the grand total and the full
// purchase history.
type GeneralReport struct {
	SalesByProduct  []ProductSales    `json:"vendas_por_produto"`
	SalesByCustomer []CustomerSales   `json:"vendas_por_cliente"`
	GrandTotal      float64           `json:"total_geral"`
	Purchases       []PurchaseSummary `json:"compras"`
}

// ExportRow is one flattened purchase line as consumed by the export
// formatters. Field order is the column order of the generated files.
type ExportRow struct {
	Customer string
	Product  string
	Quantity int
	Total    float64
	Date     string
}
