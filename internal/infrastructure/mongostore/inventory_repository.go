package mongostore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre MongoDB.
type InventoryRepo struct {
	col *mongo.Collection
}

// NewInventoryRepository construye el adaptador de persistencia de inventario.
func NewInventoryRepository(db *mongo.Database) *InventoryRepo {
	return &InventoryRepo{col: db.Collection(CollInventory)}
}

// GetByID obtiene un artículo por id; (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.Store("get inventory item", err)
	}
	return &item, nil
}

// List escanea el inventario completo.
func (r *InventoryRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.Store("scan inventory", err)
	}
	defer cursor.Close(ctx)

	var items []entity.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, domain.Store("decode inventory", err)
	}
	return items, nil
}

// FindByNameAndCategory filtra por igualdad exacta del par (name, category).
func (r *InventoryRepo) FindByNameAndCategory(ctx context.Context, name, category string) ([]entity.InventoryItem, error) {
	cursor, err := r.col.Find(ctx, bson.M{"name": name, "category": category})
	if err != nil {
		return nil, domain.Store("filter inventory by name and category", err)
	}
	defer cursor.Close(ctx)

	var items []entity.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, domain.Store("decode inventory", err)
	}
	return items, nil
}

// CountByCategory cuenta los artículos con ese nombre de categoría.
func (r *InventoryRepo) CountByCategory(ctx context.Context, category string) (int, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"category": category})
	if err != nil {
		return 0, domain.Store("count inventory by category", err)
	}
	return int(n), nil
}

// Create inserta un artículo nuevo y devuelve su id.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return "", domain.Store("insert inventory item", err)
	}
	return item.ID, nil
}

// Update aplica un $set parcial sobre el documento.
func (r *InventoryRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields}); err != nil {
		return domain.Store("update inventory item", err)
	}
	return nil
}

// UpdateStock fija el stock en un valor absoluto.
func (r *InventoryRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"stock": stock}}); err != nil {
		return domain.Store("update inventory stock", err)
	}
	return nil
}

// Delete borra el documento.
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return domain.Store("delete inventory item", err)
	}
	return nil
}
