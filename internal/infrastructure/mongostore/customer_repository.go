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

var _ repository.CustomerProfileRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerProfileRepository sobre MongoDB.
type CustomerRepo struct {
	col *mongo.Collection
}

// NewCustomerRepository construye el adaptador de perfiles de cliente.
func NewCustomerRepository(db *mongo.Database) *CustomerRepo {
	return &CustomerRepo{col: db.Collection(CollCustomers)}
}

// List escanea todos los perfiles.
func (r *CustomerRepo) List(ctx context.Context) ([]entity.CustomerProfile, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.Store("scan customers", err)
	}
	defer cursor.Close(ctx)

	var profiles []entity.CustomerProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, domain.Store("decode customers", err)
	}
	return profiles, nil
}

// FindByName busca el perfil por igualdad exacta del nombre; (nil, nil) si
// no existe.
func (r *CustomerRepo) FindByName(ctx context.Context, name string) (*entity.CustomerProfile, error) {
	var profile entity.CustomerProfile
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.Store("find customer by name", err)
	}
	return &profile, nil
}

// Create inserta un perfil nuevo y devuelve su id.
func (r *CustomerRepo) Create(ctx context.Context, fields map[string]any) (string, error) {
	id := uuid.New().String()
	doc := bson.M{"_id": id}
	for k, v := range fields {
		doc[k] = v
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return "", domain.Store("insert customer", err)
	}
	return id, nil
}

// Update aplica un $set parcial sobre el perfil.
func (r *CustomerRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields}); err != nil {
		return domain.Store("update customer", err)
	}
	return nil
}
