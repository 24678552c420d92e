package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre MongoDB.
type SaleRepo struct {
	col *mongo.Collection
}

// NewSaleRepository construye el adaptador de persistencia de ventas.
func NewSaleRepository(db *mongo.Database) *SaleRepo {
	return &SaleRepo{col: db.Collection(CollSales)}
}

// GetByID obtiene una venta por id; (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&sale)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.Store("get sale", err)
	}
	return &sale, nil
}

// List escanea la colección completa de ventas. El agregador filtra y ordena
// en memoria: la fuente no asume consultas del lado del almacén.
func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.Store("scan sales", err)
	}
	defer cursor.Close(ctx)

	var sales []entity.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, domain.Store("decode sales", err)
	}
	return sales, nil
}

// Set persiste la venta con su id ya asignado.
func (r *SaleRepo) Set(ctx context.Context, sale *entity.Sale) error {
	if _, err := r.col.InsertOne(ctx, sale); err != nil {
		return domain.Store("insert sale", err)
	}
	return nil
}

// Update aplica un $set parcial (solo ediciones administrativas explícitas).
func (r *SaleRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields}); err != nil {
		return domain.Store("update sale", err)
	}
	return nil
}

// Delete borra el documento.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return domain.Store("delete sale", err)
	}
	return nil
}
