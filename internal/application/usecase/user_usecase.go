package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
	"github.com/jhoicas/retail-pos-api/pkg/validate"
)

// UserUseCase administración de usuarios y cuentas (solo admin).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List devuelve los usuarios, opcionalmente filtrados por rol exacto. El
// hash de password nunca sale del dominio (la entidad lo excluye del JSON).
func (uc *UserUseCase) List(ctx context.Context, role string) ([]entity.User, error) {
	if role != "" {
		return uc.userRepo.ListByRole(ctx, role)
	}
	return uc.userRepo.List(ctx)
}

// Get devuelve un usuario por id. NotFound si no existe.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*entity.User, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("User")
	}
	return u, nil
}

// GetAccount devuelve un usuario por id bajo la vista de cuentas.
func (uc *UserUseCase) GetAccount(ctx context.Context, id string) (*entity.User, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("Account")
	}
	return u, nil
}

// Accounts devuelve el listado de cuentas: username, rol y estado derivado
// de is_active.
func (uc *UserUseCase) Accounts(ctx context.Context) ([]dto.AccountResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, len(users))
	for i, u := range users {
		status := "Inactive"
		if u.IsActive {
			status = "Active"
		}
		out[i] = dto.AccountResponse{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			Status:   status,
		}
	}
	return out, nil
}

// CreateAccount valida y da de alta una cuenta de staff. Username único
// verificado por escaneo; password con hash bcrypt.
func (uc *UserUseCase) CreateAccount(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	username := validate.Sanitize(in.Username)
	email := validate.Sanitize(in.Email)
	fullName := validate.Sanitize(in.FullName)

	switch {
	case username == "" || email == "" || in.Password == "" || in.ConfirmPassword == "" || in.Role == "" || fullName == "":
		return nil, domain.Validation("Please fill in all fields")
	case !validate.ValidUsername(username):
		return nil, domain.Validation("Username must be 3-20 characters long and contain only letters and numbers")
	case !validate.ValidEmail(email):
		return nil, domain.Validation("Please enter a valid email address")
	case !validate.ValidPassword(in.Password):
		return nil, domain.Validation("Password must be at least 6 characters long")
	case in.Password != in.ConfirmPassword:
		return nil, domain.Validation("Passwords do not match")
	case !entity.IsStaffRole(in.Role):
		return nil, domain.Validation("Invalid role selected")
	}

	existing, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range existing {
		if u.Username == username {
			return nil, domain.Validation("Username already exists")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Name:         fullName,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	id, err := uc.userRepo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	return &dto.AccountResponse{
		ID:       id,
		Username: username,
		Name:     fullName,
		Email:    email,
		Role:     in.Role,
		Status:   "Active",
	}, nil
}

// Update aplica una edición parcial sobre un usuario. Un campo password se
// valida, se rehashea y se persiste como password_hash; el resto de strings
// se sanea tal cual.
func (uc *UserUseCase) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return domain.Validation("No data provided")
	}
	if raw, ok := fields["password"]; ok {
		password, _ := raw.(string)
		if !validate.ValidPassword(password) {
			return domain.Validation("Password must be at least 6 characters long")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		delete(fields, "password")
		fields["password_hash"] = string(hash)
	}
	return uc.userRepo.Update(ctx, id, validate.SanitizeFields(fields))
}

// Delete elimina un usuario. Borrar un id inexistente no es error.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.userRepo.Delete(ctx, id)
}
