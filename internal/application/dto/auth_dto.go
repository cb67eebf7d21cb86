package dto

// RegisterRequest entrada para POST /auth/register.
// El password se valida con las reglas de dominio además del tag min.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	RoleID    string `json:"role_id" validate:"required,uuid"`
	FirstName string `json:"first_name" validate:"omitempty,max=50"`
	LastName  string `json:"last_name" validate:"omitempty,max=50"`
}

// RegisterResponse salida de registro exitoso (201).
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginRequest entrada para POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida de login exitoso (200).
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// ProfileResponse perfil público del usuario autenticado (GET /auth/me).
// LastLogin es RFC3339 o null si nunca ha iniciado sesión.
type ProfileResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"`
	LastLogin *string `json:"last_login"`
}
