package dto

import "github.com/jhoicas/retail-pos-api/internal/domain/entity"

// CustomerStats fila del listado de clientes: estadísticas derivadas de las
// ventas combinadas con los datos demográficos del perfil. Los campos
// demográficos son any porque ausente se representa como "N/A" y los
// opcionales (phone, email, ...) como null.
type CustomerStats struct {
	Name               string         `json:"name"`
	TotalSales         int            `json:"total_sales"`
	TotalSpent         float64        `json:"total_spent"`
	FirstPurchase      *string        `json:"first_purchase"`
	LastPurchase       *string        `json:"last_purchase"`
	PurchaseCount      int            `json:"purchase_count"`
	FavoriteItems      map[string]int `json:"favorite_items"`
	FavoriteCategories map[string]int `json:"favorite_categories"`
	Age                any            `json:"age"`
	Sex                any            `json:"sex"`
	Address            any            `json:"address"`
	Occupation         any            `json:"occupation"`
	Business           any            `json:"business"`
	Phone              any            `json:"phone,omitempty"`
	Email              any            `json:"email,omitempty"`
	Notes              any            `json:"notes,omitempty"`
	ProfilePicture     any            `json:"profile_picture,omitempty"`
}

// CustomerListResponse roster ordenado por total gastado descendente.
type CustomerListResponse struct {
	Success   bool            `json:"success"`
	Customers []CustomerStats `json:"customers"`
}

// CustomerSale venta abreviada dentro del perfil de cliente.
type CustomerSale struct {
	ID      string            `json:"id"`
	Date    string            `json:"date"`
	Total   float64           `json:"total"`
	Items   []entity.SaleItem `json:"items"`
	StaffID string            `json:"staff_id"`
}

// MonthSpend gasto agregado de un mes calendario ("2006-01").
type MonthSpend struct {
	Month    string  `json:"month"`
	Spending float64 `json:"spending"`
}

// CustomerProfileData perfil detallado: estadísticas, favoritos, tendencia
// mensual de los últimos 180 días y últimas diez ventas.
type CustomerProfileData struct {
	Name               string         `json:"name"`
	TotalSales         int            `json:"total_sales"`
	TotalSpent         float64        `json:"total_spent"`
	TotalItems         int            `json:"total_items"`
	AvgOrderValue      float64        `json:"avg_order_value"`
	FirstPurchase      *string        `json:"first_purchase"`
	LastPurchase       *string        `json:"last_purchase"`
	FavoriteItems      map[string]int `json:"favorite_items"`
	FavoriteCategories map[string]int `json:"favorite_categories"`
	MonthlySpending    []MonthSpend   `json:"monthly_spending"`
	RecentSales        []CustomerSale `json:"recent_sales"`
	Age                any            `json:"age"`
	Sex                any            `json:"sex"`
	Address            any            `json:"address"`
	Occupation         any            `json:"occupation"`
	Business           any            `json:"business"`
	Phone              any            `json:"phone"`
	Email              any            `json:"email"`
	Notes              any            `json:"notes"`
	ProfilePicture     any            `json:"profile_picture"`
}

// CustomerProfileResponse envoltorio del perfil.
type CustomerProfileResponse struct {
	Success  bool                `json:"success"`
	Customer CustomerProfileData `json:"customer"`
}

// Purchase entrada del historial de compras.
type Purchase struct {
	Date  string            `json:"date"`
	Total float64           `json:"total"`
	Items []entity.SaleItem `json:"items"`
}

// PurchasesResponse historial completo ordenado por fecha descendente.
type PurchasesResponse struct {
	Success   bool       `json:"success"`
	Purchases []Purchase `json:"purchases"`
}

// CustomerSummary primera y última compra, gasto del mes en curso y mes de
// mayor gasto.
type CustomerSummary struct {
	FirstPurchase        *string `json:"first_purchase"`
	RecentPurchase       *string `json:"recent_purchase"`
	CurrentMonthSpending float64 `json:"current_month_spending"`
	MostSpendingMonth    *string `json:"most_spending_month"`
	MostSpendingAmount   float64 `json:"most_spending_amount"`
}

// CustomerSummaryResponse envoltorio del resumen.
type CustomerSummaryResponse struct {
	Success bool            `json:"success"`
	Summary CustomerSummary `json:"summary"`
}

// SpendingEntry gasto total por par (artículo, categoría). El monto se
// recalcula como precio×cantidad, no a partir del total de la venta.
type SpendingEntry struct {
	Item     string  `json:"item"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// SpendingResponse gasto por artículo y categoría.
type SpendingResponse struct {
	Success  bool            `json:"success"`
	Spending []SpendingEntry `json:"spending"`
}

// SpendingRow fila de la tabla de gasto: agrega también cantidades.
type SpendingRow struct {
	Item     string  `json:"item"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Amount   float64 `json:"amount"`
}

// SpendingTableResponse tabla de gasto por artículo y categoría.
type SpendingTableResponse struct {
	Success bool          `json:"success"`
	Table   []SpendingRow `json:"table"`
}

// TopItemMonthly serie mensual de un artículo, alineada con Months.
type TopItemMonthly struct {
	Name    string    `json:"name"`
	Monthly []float64 `json:"monthly"`
}

// TopItemsMonthly datos para el gráfico de barras agrupadas: los tres
// artículos con mayor gasto sobre todos los meses del historial.
type TopItemsMonthly struct {
	Months []string         `json:"months"`
	Items  []TopItemMonthly `json:"items"`
}

// TopItemsMonthlyResponse envoltorio del gráfico.
type TopItemsMonthlyResponse struct {
	Success bool            `json:"success"`
	Data    TopItemsMonthly `json:"data"`
}

// UpdateCustomerRequest campos del formulario multipart de edición de perfil.
// Todos opcionales salvo el nombre.
type UpdateCustomerRequest struct {
	Name         string `form:"name"`
	OriginalName string `form:"original_name"`
	Age          string `form:"age"`
	Sex          string `form:"sex"`
	Address      string `form:"address"`
	Occupation   string `form:"occupation"`
	Business     string `form:"business"`
	Phone        string `form:"phone"`
	Email        string `form:"email"`
	Notes        string `form:"notes"`
}
