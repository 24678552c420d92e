package entity

import "time"

// InventoryItem representa un artículo del inventario. Category es el nombre
// de la categoría denormalizado, no su id. Invariante: el par (name,
// category) es único entre los artículos existentes.
//
// Stock solo lo muta el procesador de ventas (decremento) o una edición
// administrativa directa (asignación absoluta).
type InventoryItem struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Category  string    `bson:"category" json:"category"`
	Stock     int       `bson:"stock" json:"stock"`
	Price     float64   `bson:"price" json:"price"`
	Supplier  string    `bson:"supplier" json:"supplier"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
