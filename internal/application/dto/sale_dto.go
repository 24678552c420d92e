package dto

import "github.com/jhoicas/retail-pos-api/internal/domain/entity"

// SaleItemInput línea de venta tal como la envía el punto de venta.
type SaleItemInput struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateSaleRequest carrito a procesar. Total lo declara el cliente; no se
// recalcula en el servidor.
type CreateSaleRequest struct {
	CustomerName string          `json:"customerName"`
	Items        []SaleItemInput `json:"items"`
	Total        float64         `json:"total"`
}

// CreateSaleResponse resultado del procesamiento.
type CreateSaleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SaleID  string `json:"sale_id"`
}

// SaleView venta enriquecida para listados: fecha formateada, nombre del
// staff resuelto y resumen de líneas.
type SaleView struct {
	ID           string            `json:"id"`
	CustomerName string            `json:"customer_name"`
	Items        []entity.SaleItem `json:"items"`
	Total        float64           `json:"total"`
	Date         string            `json:"date"` // "January 02, 2006 (03:04 PM)" o "Unknown"
	StaffID      string            `json:"staff_id"`
	StaffName    string            `json:"staff_name"`
	ItemsDisplay string            `json:"items_display"`
}

// SalesListResponse listado simple de ventas.
type SalesListResponse struct {
	Success bool       `json:"success"`
	Sales   []SaleView `json:"sales"`
}

// SalesFilter parámetros del listado filtrado.
type SalesFilter struct {
	DateFilter     string `query:"dateFilter"`
	CustomerFilter string `query:"customerFilter"`
	AmountFilter   string `query:"amountFilter"`
	StartDate      string `query:"startDate"`
	EndDate        string `query:"endDate"`
	Page           int    `query:"page"`
}

// SalesSummary totales del conjunto filtrado completo (no de la página).
type SalesSummary struct {
	TotalSalesAmount  float64 `json:"total_sales_amount"`
	TotalTransactions int     `json:"total_transactions"`
	AverageOrder      float64 `json:"average_order"`
}

// FilteredSalesResponse página de resultados más los totales del filtro.
type FilteredSalesResponse struct {
	Success    bool         `json:"success"`
	Sales      []SaleView   `json:"sales"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"total_pages"`
	Summary    SalesSummary `json:"summary"`
}
