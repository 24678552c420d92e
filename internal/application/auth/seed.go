package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
	"github.com/jhoicas/retail-pos-api/pkg/logger"
)

type defaultAccount struct {
	Username string
	Password string
	Email    string
	Role     string
	Name     string
}

var defaultAccounts = []defaultAccount{
	{Username: "admin", Password: "admin123", Email: "admin@company.com", Role: entity.RoleAdmin, Name: "Admin User"},
	{Username: "salesman", Password: "sales123", Email: "salesman@company.com", Role: entity.RoleUser, Name: "Sales Person"},
	{Username: "customer", Password: "customer123", Email: "customer@email.com", Role: entity.RoleCustomer, Name: "Customer"},
	{Username: "Luigi Corpuz", Password: "rufrance", Email: "luigi.corpuz@company.com", Role: entity.RoleManager, Name: "Luigi Corpuz"},
}

// SeedDefaultAccounts crea las cuentas por defecto que falten. Es idempotente:
// se compara por username contra la colección existente. Los fallos por cuenta
// se registran y no detienen el arranque.
func SeedDefaultAccounts(ctx context.Context, userRepo repository.UserRepository, log *logger.Logger) error {
	existing, err := userRepo.List(ctx)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(existing))
	for _, u := range existing {
		present[u.Username] = true
	}

	for _, acc := range defaultAccounts {
		if present[acc.Username] {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := &entity.User{
			Username:     acc.Username,
			Email:        acc.Email,
			PasswordHash: string(hash),
			Role:         acc.Role,
			Name:         acc.Name,
			IsActive:     true,
			CreatedAt:    time.Now(),
		}
		if _, err := userRepo.Create(ctx, u); err != nil {
			log.Error().Err(err).Str("username", acc.Username).Msg("no se pudo crear la cuenta por defecto")
			continue
		}
		log.Info().Str("username", acc.Username).Str("role", acc.Role).Msg("cuenta por defecto creada")
	}
	return nil
}
