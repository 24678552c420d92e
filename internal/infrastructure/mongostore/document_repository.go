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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación genérica para colecciones de atributos libres
// (suppliers y categories).
type DocumentRepo struct {
	col      *mongo.Collection
	kind     string // para los mensajes de error: "supplier", "category"
	idPrefix string
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(db *mongo.Database) *DocumentRepo {
	return &DocumentRepo{col: db.Collection(CollSuppliers), kind: "supplier"}
}

// NewCategoryRepository construye el adaptador de categorías. Los ids de
// categoría llevan el prefijo "cat_": es la marca que distingue un id de un
// nombre en los formularios de inventario.
func NewCategoryRepository(db *mongo.Database) *DocumentRepo {
	return &DocumentRepo{col: db.Collection(CollCategories), kind: "category", idPrefix: "cat_"}
}

// GetByID obtiene un documento por id; (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	var raw bson.M
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.Store("get "+r.kind, err)
	}
	return toDocument(raw), nil
}

// List escanea la colección completa.
func (r *DocumentRepo) List(ctx context.Context) ([]entity.Document, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.Store("scan "+r.kind+"s", err)
	}
	defer cursor.Close(ctx)

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, domain.Store("decode "+r.kind+"s", err)
	}
	docs := make([]entity.Document, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, *toDocument(raw))
	}
	return docs, nil
}

// Create inserta el documento tal cual y devuelve el id generado.
func (r *DocumentRepo) Create(ctx context.Context, fields map[string]any) (string, error) {
	id := r.idPrefix + uuid.New().String()
	doc := bson.M{"_id": id}
	for k, v := range fields {
		doc[k] = v
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return "", domain.Store("insert "+r.kind, err)
	}
	return id, nil
}

// Update aplica un $set parcial sobre el documento.
func (r *DocumentRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields}); err != nil {
		return domain.Store("update "+r.kind, err)
	}
	return nil
}

// Delete borra el documento.
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return domain.Store("delete "+r.kind, err)
	}
	return nil
}

func toDocument(raw bson.M) *entity.Document {
	doc := entity.Document{Fields: make(map[string]any, len(raw))}
	for k, v := range raw {
		if k == "_id" {
			if s, ok := v.(string); ok {
				doc.ID = s
			}
			continue
		}
		doc.Fields[k] = v
	}
	return &doc
}
