package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* cargan el rol del usuario con sus permisos.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdateLastLogin(id string, at time.Time) error
}

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	GetByID(id string) (*entity.Role, error)
}
