package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/almacen-api/pkg/jwt"
)

const testRoleID = "11111111-1111-1111-1111-111111111111"

type fakeUserRepo struct {
	byUsername map[string]*entity.User
	byEmail    map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := f.byUsername[u.Username]; ok {
		return domain.ErrDuplicate
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicate
	}
	f.byUsername[u.Username] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return f.byUsername[username], nil
}

func (f *fakeUserRepo) UpdateLastLogin(id string, at time.Time) error {
	for _, u := range f.byUsername {
		if u.ID == id {
			u.LastLogin = &at
		}
	}
	return nil
}

type fakeRoleRepo struct {
	roles map[string]*entity.Role
}

func (f *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	return f.roles[id], nil
}

func newTestUseCase() (*auth.UseCase, *fakeUserRepo) {
	users := newFakeUserRepo()
	roles := &fakeRoleRepo{roles: map[string]*entity.Role{
		testRoleID: {ID: testRoleID, Name: "manager"},
	}}
	uc := auth.NewUseCase(users, roles, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	})
	return uc, users
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "Segura123!",
		RoleID:   testRoleID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_Exitoso(t *testing.T) {
	uc, users := newTestUseCase()

	resp, err := uc.Register(validRegister())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.UserID)

	stored := users.byUsername["maria"]
	require.NotNil(t, stored)
	assert.True(t, stored.Active)
	assert.NotEqual(t, "Segura123!", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_PasswordDebil(t *testing.T) {
	uc, _ := newTestUseCase()

	in := validRegister()
	in.Password = "corta1!"
	_, err := uc.Register(in)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "8 caracteres")
}

func TestRegister_RolInexistente(t *testing.T) {
	uc, _ := newTestUseCase()

	in := validRegister()
	in.RoleID = "22222222-2222-2222-2222-222222222222"
	_, err := uc.Register(in)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, users := newTestUseCase()

	first, err := uc.Register(validRegister())
	require.NoError(t, err)

	second := validRegister()
	second.Username = "otra"
	_, err = uc.Register(second)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// La fila del primer usuario queda intacta.
	assert.Equal(t, first.UserID, users.byEmail["maria@example.com"].ID)
	assert.Equal(t, "maria", users.byEmail["maria@example.com"].Username)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_RoundTripConRegistro(t *testing.T) {
	uc, _ := newTestUseCase()

	reg, err := uc.Register(validRegister())
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "Segura123!"})
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, resp.UserID)

	// La identidad del token decodificado es el usuario registrado.
	userID, err := pkgjwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, userID)
}

func TestLogin_ActualizaLastLogin(t *testing.T) {
	uc, users := newTestUseCase()

	_, err := uc.Register(validRegister())
	require.NoError(t, err)
	require.Nil(t, users.byUsername["maria"].LastLogin)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "Segura123!"})
	require.NoError(t, err)
	assert.NotNil(t, users.byUsername["maria"].LastLogin)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "Incorrecta1!"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistenteMismoError(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "Segura123!"})
	// Mismo error que password incorrecto: no se revela cuál campo falló.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, users := newTestUseCase()

	_, err := uc.Register(validRegister())
	require.NoError(t, err)
	users.byUsername["maria"].Active = false

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "Segura123!"})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Profile
// ──────────────────────────────────────────────────────────────────────────────

func TestProfile_ConYSinLastLogin(t *testing.T) {
	uc, _ := newTestUseCase()

	user := &entity.User{
		ID:       "u1",
		Username: "maria",
		Email:    "maria@example.com",
		Role:     &entity.Role{Name: "manager"},
	}
	p := uc.Profile(user)
	assert.Nil(t, p.LastLogin, "sin login previo debe ser null")
	assert.Equal(t, "manager", p.Role)

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	user.LastLogin = &at
	p = uc.Profile(user)
	require.NotNil(t, p.LastLogin)
	assert.Equal(t, "2026-08-30T12:00:00Z", *p.LastLogin)
}
