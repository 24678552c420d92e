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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre MongoDB.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(CollUsers)}
}

// GetByID obtiene un usuario por id; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.Store("get user", err)
	}
	return &u, nil
}

// List escanea la colección completa de usuarios.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.Store("scan users", err)
	}
	defer cursor.Close(ctx)

	var users []entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, domain.Store("decode users", err)
	}
	return users, nil
}

// ListByRole filtra usuarios por igualdad exacta del campo role.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]entity.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, domain.Store("filter users by role", err)
	}
	defer cursor.Close(ctx)

	var users []entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, domain.Store("decode users", err)
	}
	return users, nil
}

// Create inserta un usuario nuevo y devuelve su id.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) (string, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return "", domain.Store("insert user", err)
	}
	return u.ID, nil
}

// Update aplica un $set parcial sobre el documento.
func (r *UserRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields}); err != nil {
		return domain.Store("update user", err)
	}
	return nil
}

// Delete borra el documento; borrar un id inexistente no es error.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return domain.Store("delete user", err)
	}
	return nil
}
