package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/almacen-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/almacen-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "almacen-api-test"
	testExpMin    = 60
)

// fakeUserRepo repositorio en memoria para el middleware.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateLastLogin(id string, at time.Time) error {
	if u, ok := r.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

// userWithPermissions construye un usuario activo con los permisos dados.
func userWithPermissions(perms ...string) *entity.User {
	role := &entity.Role{ID: "00000000-0000-0000-0000-0000000000aa", Name: "tester"}
	for _, p := range perms {
		role.Permissions = append(role.Permissions, entity.Permission{Name: p})
	}
	return &entity.User{
		ID:       testUserID,
		Username: "bodeguero1",
		Active:   true,
		Role:     role,
	}
}

// buildTestApp construye una app Fiber mínima con una ruta protegida por
// AuthMiddleware y, opcionalmente, RequirePermission.
func buildTestApp(repo *fakeUserRepo, permission string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret, repo)}
	if permission != "" {
		handlers = append(handlers, apphttp.RequirePermission(permission))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		user := apphttp.CurrentUser(c)
		return c.JSON(fiber.Map{"username": user.Username})
	})
	app.Get("/protected", handlers...)
	return app
}

// tokenFor genera un JWT válido para el usuario indicado.
func tokenFor(t *testing.T, userID string, expMin int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, expMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza GET /protected con el header Authorization dado.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — matriz 401
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(userWithPermissions()), "")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(userWithPermissions()), "")

	for _, header := range []string{"token-sin-esquema", "Basic abc123", "Bearer "} {
		resp := doRequest(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"header %q debe ser rechazado", header)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(userWithPermissions()), "")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(userWithPermissions()), "")
	resp := doRequest(t, app, tokenFor(t, testUserID, -1))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "expirado",
		"el error debe distinguir el token expirado")
}

// Token válido pero el usuario ya no existe en la base.
func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(), "")
	resp := doRequest(t, app, tokenFor(t, testUserID, testExpMin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token válido pero la cuenta fue desactivada después de emitirlo.
func TestAuthMiddleware_UsuarioInactivo_Retorna401(t *testing.T) {
	user := userWithPermissions()
	user.Active = false
	app := buildTestApp(newFakeUserRepo(user), "")
	resp := doRequest(t, app, tokenFor(t, testUserID, testExpMin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValido_CargaUsuario(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(userWithPermissions()), "")
	resp := doRequest(t, app, tokenFor(t, testUserID, testExpMin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "bodeguero1", body["username"],
		"el handler debe ver al usuario cargado por el middleware")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_ConPermiso_Retorna200(t *testing.T) {
	repo := newFakeUserRepo(userWithPermissions(entity.PermAdjustStock))
	app := buildTestApp(repo, entity.PermAdjustStock)
	resp := doRequest(t, app, tokenFor(t, testUserID, testExpMin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePermission_SinPermiso_Retorna403(t *testing.T) {
	repo := newFakeUserRepo(userWithPermissions(entity.PermViewReports))
	app := buildTestApp(repo, entity.PermManageProducts)
	resp := doRequest(t, app, tokenFor(t, testUserID, testExpMin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "permiso insuficiente")
}

func TestRequirePermission_RolSinPermisos_Retorna403(t *testing.T) {
	repo := newFakeUserRepo(userWithPermissions())
	app := buildTestApp(repo, entity.PermAdjustStock)
	resp := doRequest(t, app, tokenFor(t, testUserID, testExpMin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
