package models

// Request bodies are bound to these explicit input structs and validated
// before they reach any service, instead of accepting arbitrary JSON shapes.

// CustomerInput is the body of POST /clientes.
type CustomerInput struct {
	Name  string `json:"nome" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"telefone" validate:"omitempty,max=20"`
}

// CustomerUpdateInput is the body of PUT /clientes/:id. Absent fields keep
// their current values.
type CustomerUpdateInput struct {
	Name  *string `json:"nome" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"telefone" validate:"omitempty,max=20"`
}

// ProductInput is the body of POST /produtos.
type ProductInput struct {
	Name  string   `json:"nome" validate:"required,min=1,max=100"`
	Price *float64 `json:"preco" validate:"required,gte=0"`
	Stock int      `json:"estoque" validate:"gte=0"`
}

// ProductUpdateInput is the body of PUT /produtos/:id. Absent fields keep
// their current values.
type ProductUpdateInput struct {
	Name  *string  `json:"nome" validate:"omitempty,min=1,max=100"`
	Price *float64 `json:"preco" validate:"omitempty,gte=0"`
	Stock *int     `json:"estoque" validate:"omitempty,gte=0"`
}

// StockUpdateInput is the body of PUT /produtos/:id/estoque. Quantity is the
// amount to subtract from the product's stock.
type StockUpdateInput struct {
	Quantity int `json:"quantidade" validate:"required,gt=0"`
}

// PurchaseItemInput is one requested line of a purchase.
type PurchaseItemInput struct {
	ProductID uint `json:"produto_id" validate:"required"`
	Quantity  int  `json:"quantidade" validate:"required,gt=0"`
}

// PurchaseInput is the body of POST /compras.
type PurchaseInput struct {
	CustomerID uint                `json:"cliente_id" validate:"required"`
	Items      []PurchaseItemInput `json:"itens" validate:"required,min=1,dive"`
}
