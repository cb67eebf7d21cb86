package entity

import "time"

// User representa un usuario del sistema.
// PasswordHash es siempre bcrypt; el password en texto plano nunca se persiste ni se registra.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	RoleID       string
	Role         *Role // cargado por el repositorio; requerido antes de HasPermission
	Active       bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPermission indica si el rol del usuario tiene el permiso dado.
// El rol y sus permisos deben haber sido cargados; sin rol cargado retorna false.
func (u *User) HasPermission(name string) bool {
	if u.Role == nil {
		return false
	}
	for _, p := range u.Role.Permissions {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Role representa un rol con su conjunto de permisos (datos de referencia estáticos).
type Role struct {
	ID          string
	Name        string
	Description string
	Permissions []Permission
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Permission representa un permiso asignable a roles vía role_permissions.
type Permission struct {
	ID          string
	Name        string
	Description string
}

// RolePermission es la asociación rol-permiso (identidad compuesta, sin ciclo de vida propio).
type RolePermission struct {
	RoleID       string
	PermissionID string
}

// Nombres de permisos sembrados por las migraciones.
const (
	PermManageProducts   = "manage_products"
	PermManageCategories = "manage_categories"
	PermAdjustStock      = "adjust_stock"
	PermViewReports      = "view_reports"
)
