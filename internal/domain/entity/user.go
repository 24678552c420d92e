package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleUser     = "user" // vendedor / staff raso
	RoleManager  = "manager"
	RoleCustomer = "customer"

	// RoleStaff es el rol agregado usado en el login: acepta cualquiera de
	// admin, user o manager. No se persiste nunca en un documento.
	RoleStaff = "staff"
)

// StaffRoles devuelve los roles que componen el agregado staff.
func StaffRoles() []string {
	return []string{RoleAdmin, RoleUser, RoleManager}
}

// IsStaffRole indica si un rol persistido pertenece al agregado staff.
func IsStaffRole(role string) bool {
	return role == RoleAdmin || role == RoleUser || role == RoleManager
}

// User representa una cuenta del sistema. Invariante: username único dentro
// de la colección.
type User struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Username     string     `bson:"username" json:"username"`
	Email        string     `bson:"email" json:"email"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	Role         string     `bson:"role" json:"role"`
	Name         string     `bson:"name" json:"name"` // nombre para mostrar
	IsActive     bool       `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	LastLogin    *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// DisplayName devuelve el nombre para mostrar, con fallback al username.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Username != "" {
		return u.Username
	}
	return "Unknown"
}
