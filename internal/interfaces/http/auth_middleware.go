package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	pkgjwt "github.com/tu-usuario/almacen-api/pkg/jwt"
)

// LocalUser clave de Locals para el usuario autenticado (*entity.User).
const LocalUser = "current_user"

// AuthMiddleware valida el Bearer Token JWT, carga el usuario (con rol y
// permisos) desde el repositorio y lo deja en c.Locals. Un token válido de
// un usuario eliminado o inactivo también es 401.
func AuthMiddleware(jwtSecret string, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token vacío"})
		}

		userID, err := pkgjwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, pkgjwt.ErrExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token expirado"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido"})
		}

		user, err := userRepo.GetByID(userID)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("error al cargar usuario autenticado")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno"})
		}
		if user == nil || !user.Active {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido"})
		}

		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// CurrentUser devuelve el usuario autenticado del contexto, o nil si no hay.
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// RequirePermission autoriza la ruta solo si el rol del usuario tiene el
// permiso indicado. Debe ir después de AuthMiddleware.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "no autenticado"})
		}
		if !user.HasPermission(permission) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "permiso insuficiente"})
		}
		return c.Next()
	}
}
