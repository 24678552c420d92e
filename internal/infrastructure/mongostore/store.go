// Package mongostore implementa los puertos de persistencia sobre MongoDB.
//
// Es el adaptador del almacén de documentos: cada repositorio se limita al
// contrato de la fuente (get por id, escaneo de colección, filtro de
// igualdad por campo, inserción, $set parcial por id, borrado). No se usan
// consultas compuestas más allá de igualdades encadenadas ni transacciones
// multi-documento, de ahí el decremento de stock no atómico del procesador
// de ventas.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/retail-pos-api/pkg/config"
)

// Nombres de las colecciones.
const (
	CollUsers      = "users"
	CollInventory  = "inventory"
	CollSales      = "sales"
	CollSuppliers  = "suppliers"
	CollCategories = "categories"
	CollCustomers  = "customers"
)

// Connect abre la conexión a MongoDB y verifica con un ping. El contexto de
// conexión se limita a 10 segundos.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("conectar a mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping a mongodb: %w", err)
	}
	return client, nil
}
