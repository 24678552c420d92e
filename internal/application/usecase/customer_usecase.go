package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
	"github.com/jhoicas/retail-pos-api/pkg/validate"
)

// CustomerUseCase edición de perfiles demográficos de cliente.
type CustomerUseCase struct {
	customerRepo repository.CustomerProfileRepository
}

// NewCustomerUseCase construye el caso de uso de perfiles.
func NewCustomerUseCase(customerRepo repository.CustomerProfileRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// optField devuelve el string saneado, o nil cuando viene vacío. Los campos
// ausentes se escriben como null, igual que una edición que los borra.
func optField(s string) any {
	if s == "" {
		return nil
	}
	return validate.Sanitize(s)
}

// UpdateProfile crea o actualiza el perfil de un cliente a partir del
// formulario multipart. El perfil existente se busca por original_name si
// viene (renombrado) y por name en caso contrario; si no existe ninguno se
// crea con created_at. pictureDataURL llega ya codificada como data URL por
// la capa HTTP, o vacía si no se subió imagen.
func (uc *CustomerUseCase) UpdateProfile(ctx context.Context, updatedBy string, in dto.UpdateCustomerRequest, pictureDataURL string) error {
	if in.Name == "" {
		return domain.Validation("Customer name is required")
	}
	var age any
	if in.Age != "" {
		n, err := strconv.Atoi(in.Age)
		if err != nil || n < 1 || n > 120 {
			return domain.Validation("Invalid age")
		}
		age = n
	}

	fields := map[string]any{
		"name":       validate.Sanitize(in.Name),
		"age":        age,
		"sex":        optField(in.Sex),
		"address":    optField(in.Address),
		"occupation": optField(in.Occupation),
		"business":   optField(in.Business),
		"updated_at": time.Now(),
		"updated_by": updatedBy,
	}
	if in.Phone != "" {
		fields["phone"] = validate.Sanitize(in.Phone)
	}
	if in.Email != "" {
		fields["email"] = validate.Sanitize(in.Email)
	}
	if in.Notes != "" {
		fields["notes"] = validate.Sanitize(in.Notes)
	}
	if pictureDataURL != "" {
		fields["profile_picture"] = pictureDataURL
	}

	searchName := in.OriginalName
	if searchName == "" {
		searchName = in.Name
	}
	existing, err := uc.customerRepo.FindByName(ctx, searchName)
	if err != nil {
		return err
	}
	if existing != nil {
		return uc.customerRepo.Update(ctx, existing.ID, fields)
	}
	fields["created_at"] = time.Now()
	_, err = uc.customerRepo.Create(ctx, fields)
	return err
}
