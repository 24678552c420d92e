package entity

import "time"

// WalkInCustomer es el nombre de cliente por defecto cuando la venta no
// registra ninguno.
const WalkInCustomer = "Walk-in Customer"

// SaleItem es una línea de venta: nombre, categoría, precio unitario y
// cantidad, tal como se capturaron al vender.
type SaleItem struct {
	ID       string  `bson:"id,omitempty" json:"id,omitempty"` // id del artículo de inventario
	Name     string  `bson:"name" json:"name"`
	Category string  `bson:"category" json:"category"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Qty devuelve la cantidad con el valor por defecto 1 cuando el documento no
// la trae (política de agregación; en ventas creadas por la API siempre es >= 1).
func (i SaleItem) Qty() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}

// Amount devuelve el importe de la línea (precio unitario por cantidad),
// recalculado desde la línea y no desde el total de la venta.
func (i SaleItem) Amount() float64 {
	return i.Price * float64(i.Qty())
}

// Sale es el registro inmutable de una venta. Date se persiste como cadena
// ISO-8601 y se parsea en el agregador: una fecha ilegible no invalida el
// documento. CustomerName es texto libre; el cruce con CustomerProfile es
// por igualdad exacta de cadenas.
type Sale struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	CustomerName string     `bson:"customer_name" json:"customer_name"`
	Items        []SaleItem `bson:"items" json:"items"`
	Total        float64    `bson:"total" json:"total"`
	Date         string     `bson:"date" json:"date"`
	StaffID      string     `bson:"staff_id" json:"staff_id"`
}

// Layouts aceptados al parsear Date. Cubren isoformat de la fuente original
// (con y sin zona, con y sin fracción) y fecha sola.
var saleDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time parsea la fecha de la venta. ok es false cuando la fecha falta o no
// es parseable; en ese caso devuelve el tiempo cero, que ordena al final de
// un listado descendente.
func (s Sale) Time() (time.Time, bool) {
	return ParseSaleDate(s.Date)
}

// ParseSaleDate parsea una fecha ISO-8601 tolerando los formatos de la
// fuente original.
func ParseSaleDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
