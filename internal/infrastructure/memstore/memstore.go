// Package memstore es una implementación en memoria de los puertos de
// persistencia. Sustituye a mongostore en los tests de casos de uso: misma
// semántica (get por id, escaneo, filtro de igualdad, $set parcial), sin
// base de datos.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
)

// Store agrupa las colecciones en memoria y expone un repositorio por puerto.
type Store struct {
	mu         sync.RWMutex
	users      map[string]entity.User
	inventory  map[string]entity.InventoryItem
	sales      map[string]entity.Sale
	suppliers  map[string]map[string]any
	categories map[string]map[string]any
	customers  map[string]entity.CustomerProfile
}

// New crea un Store vacío.
func New() *Store {
	return &Store{
		users:      map[string]entity.User{},
		inventory:  map[string]entity.InventoryItem{},
		sales:      map[string]entity.Sale{},
		suppliers:  map[string]map[string]any{},
		categories: map[string]map[string]any{},
		customers:  map[string]entity.CustomerProfile{},
	}
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Inventory devuelve el repositorio de inventario.
func (s *Store) Inventory() repository.InventoryRepository { return &inventoryRepo{s} }

// Sales devuelve el repositorio de ventas.
func (s *Store) Sales() repository.SaleRepository { return &saleRepo{s} }

// Suppliers devuelve el repositorio de proveedores.
func (s *Store) Suppliers() repository.SupplierRepository {
	return &documentRepo{s: s, docs: s.suppliers}
}

// Categories devuelve el repositorio de categorías. Ids con prefijo "cat_",
// igual que el adaptador de MongoDB.
func (s *Store) Categories() repository.CategoryRepository {
	return &documentRepo{s: s, docs: s.categories, idPrefix: "cat_"}
}

// Customers devuelve el repositorio de perfiles de cliente.
func (s *Store) Customers() repository.CustomerProfileRepository { return &customerRepo{s} }

// ── users ────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *userRepo) List(_ context.Context) ([]entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *userRepo) ListByRole(_ context.Context, role string) ([]entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []entity.User
	for _, u := range r.s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *userRepo) Create(_ context.Context, u *entity.User) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	r.s.users[u.ID] = *u
	return u.ID, nil
}

func (r *userRepo) Update(_ context.Context, id string, fields map[string]any) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "username":
			u.Username, _ = v.(string)
		case "email":
			u.Email, _ = v.(string)
		case "password_hash":
			u.PasswordHash, _ = v.(string)
		case "role":
			u.Role, _ = v.(string)
		case "name":
			u.Name, _ = v.(string)
		case "is_active":
			u.IsActive, _ = v.(bool)
		case "last_login":
			if t, ok := toTime(v); ok {
				u.LastLogin = &t
			}
		}
	}
	r.s.users[id] = u
	return nil
}

func (r *userRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

// ── inventory ────────────────────────────────────────────────────────────

type inventoryRepo struct{ s *Store }

func (r *inventoryRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if item, ok := r.s.inventory[id]; ok {
		return &item, nil
	}
	return nil, nil
}

func (r *inventoryRepo) List(_ context.Context) ([]entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.InventoryItem, 0, len(r.s.inventory))
	for _, item := range r.s.inventory {
		out = append(out, item)
	}
	return out, nil
}

func (r *inventoryRepo) FindByNameAndCategory(_ context.Context, name, category string) ([]entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []entity.InventoryItem
	for _, item := range r.s.inventory {
		if item.Name == name && item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *inventoryRepo) CountByCategory(_ context.Context, category string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, item := range r.s.inventory {
		if item.Category == category {
			n++
		}
	}
	return n, nil
}

func (r *inventoryRepo) Create(_ context.Context, item *entity.InventoryItem) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.s.inventory[item.ID] = *item
	return item.ID, nil
}

func (r *inventoryRepo) Update(_ context.Context, id string, fields map[string]any) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.inventory[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			item.Name, _ = v.(string)
		case "category":
			item.Category, _ = v.(string)
		case "stock":
			if n, ok := toInt(v); ok {
				item.Stock = n
			}
		case "price":
			if f, ok := toFloat(v); ok {
				item.Price = f
			}
		case "supplier":
			item.Supplier, _ = v.(string)
		case "updated_at":
			if t, ok := toTime(v); ok {
				item.UpdatedAt = t
			}
		}
	}
	r.s.inventory[id] = item
	return nil
}

func (r *inventoryRepo) UpdateStock(_ context.Context, id string, stock int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.inventory[id]
	if !ok {
		return nil
	}
	item.Stock = stock
	r.s.inventory[id] = item
	return nil
}

func (r *inventoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.inventory, id)
	return nil
}

// ── sales ────────────────────────────────────────────────────────────────

type saleRepo struct{ s *Store }

func (r *saleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if sale, ok := r.s.sales[id]; ok {
		return &sale, nil
	}
	return nil, nil
}

func (r *saleRepo) List(_ context.Context) ([]entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Sale, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		out = append(out, sale)
	}
	return out, nil
}

func (r *saleRepo) Set(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales[sale.ID] = *sale
	return nil
}

func (r *saleRepo) Update(_ context.Context, id string, fields map[string]any) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "customer_name":
			sale.CustomerName, _ = v.(string)
		case "total":
			if f, ok := toFloat(v); ok {
				sale.Total = f
			}
		case "date":
			sale.Date, _ = v.(string)
		}
	}
	r.s.sales[id] = sale
	return nil
}

func (r *saleRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sales, id)
	return nil
}

// ── suppliers / categories ───────────────────────────────────────────────

type documentRepo struct {
	s        *Store
	docs     map[string]map[string]any
	idPrefix string
}

func (r *documentRepo) GetByID(_ context.Context, id string) (*entity.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	fields, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return &entity.Document{ID: id, Fields: cloneFields(fields)}, nil
}

func (r *documentRepo) List(_ context.Context) ([]entity.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Document, 0, len(r.docs))
	for id, fields := range r.docs {
		out = append(out, entity.Document{ID: id, Fields: cloneFields(fields)})
	}
	return out, nil
}

func (r *documentRepo) Create(_ context.Context, fields map[string]any) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := r.idPrefix + uuid.New().String()
	r.docs[id] = cloneFields(fields)
	return id, nil
}

func (r *documentRepo) Update(_ context.Context, id string, fields map[string]any) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (r *documentRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.docs, id)
	return nil
}

// ── customers ────────────────────────────────────────────────────────────

type customerRepo struct{ s *Store }

func (r *customerRepo) List(_ context.Context) ([]entity.CustomerProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.CustomerProfile, 0, len(r.s.customers))
	for _, p := range r.s.customers {
		out = append(out, p)
	}
	return out, nil
}

func (r *customerRepo) FindByName(_ context.Context, name string) (*entity.CustomerProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.customers {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *customerRepo) Create(_ context.Context, fields map[string]any) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := uuid.New().String()
	p := entity.CustomerProfile{ID: id}
	applyProfileFields(&p, fields)
	r.s.customers[id] = p
	return id, nil
}

func (r *customerRepo) Update(_ context.Context, id string, fields map[string]any) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.customers[id]
	if !ok {
		return nil
	}
	applyProfileFields(&p, fields)
	r.s.customers[id] = p
	return nil
}

func applyProfileFields(p *entity.CustomerProfile, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "name":
			p.Name, _ = v.(string)
		case "age":
			if v == nil {
				p.Age = nil
			} else if n, ok := toInt(v); ok {
				p.Age = &n
			}
		case "sex":
			p.Sex = toStringPtr(v)
		case "address":
			p.Address = toStringPtr(v)
		case "occupation":
			p.Occupation = toStringPtr(v)
		case "business":
			p.Business = toStringPtr(v)
		case "phone":
			p.Phone = toStringPtr(v)
		case "email":
			p.Email = toStringPtr(v)
		case "notes":
			p.Notes = toStringPtr(v)
		case "profile_picture":
			p.ProfilePicture = toStringPtr(v)
		case "created_at":
			if t, ok := toTime(v); ok {
				p.CreatedAt = &t
			}
		case "updated_at":
			if t, ok := toTime(v); ok {
				p.UpdatedAt = &t
			}
		case "updated_by":
			p.UpdatedBy, _ = v.(string)
		}
	}
}

// ── helpers ──────────────────────────────────────────────────────────────

func cloneFields(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int:
		return float64(f), true
	}
	return 0, false
}

func toTime(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}

func toStringPtr(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}
