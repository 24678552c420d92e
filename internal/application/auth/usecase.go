// Package auth implementa el caso de uso de autenticación: login por
// username+rol contra la colección de usuarios y emisión de JWT.
package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
	"github.com/jhoicas/retail-pos-api/pkg/jwt"
	"github.com/jhoicas/retail-pos-api/pkg/validate"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de autenticación.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// roleMatches indica si el rol persistido satisface el rol solicitado.
// El rol agregado "staff" acepta admin, user y manager.
func roleMatches(requested, stored string) bool {
	if requested == entity.RoleStaff {
		return entity.IsStaffRole(stored)
	}
	return requested == stored
}

// Login verifica username+rol+password contra la colección de usuarios.
// El emparejamiento es por escaneo: username Y rol deben coincidir a la vez,
// de modo que un mismo username puede existir bajo roles distintos. Devuelve
// ErrInvalidCredentials tanto para usuario inexistente como para password
// incorrecta. En éxito estampa last_login (best effort) y emite el token.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := validate.Sanitize(in.Username)
	if username == "" || in.Password == "" || in.Role == "" {
		return nil, domain.Validation("Please fill in all fields")
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var user *entity.User
	for i := range users {
		if users[i].Username == username && roleMatches(in.Role, users[i].Role) {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// last_login es informativo: un fallo al estamparlo no bloquea el login.
	now := time.Now()
	_ = uc.userRepo.Update(ctx, user.ID, map[string]any{"last_login": now})

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
			Name:     user.DisplayName(),
		},
	}, nil
}
