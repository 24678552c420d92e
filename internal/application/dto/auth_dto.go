package dto

// LoginRequest credenciales de acceso. Role puede ser un rol concreto o el
// agregado "staff" (admin, user o manager).
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// UserResponse principal autenticado; nunca incluye el hash de contraseña.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// LoginResponse token de sesión más el principal.
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// CreateAccountRequest alta de cuenta de staff (solo admin).
type CreateAccountRequest struct {
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	Role            string `json:"role" form:"role"`
	FullName        string `json:"full_name" form:"full_name"`
}

// AccountResponse cuenta en el listado administrativo.
type AccountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"` // Active | Inactive
}
