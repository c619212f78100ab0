package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/config"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/dto"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
}

func TestAuthService_LoginYRefresh(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	creado, err := svc.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Username: "valen",
		Password: "parrilla-2026",
		Nombre:   "Valentina",
		Rol:      model.RolOperador,
	})
	require.NoError(t, err)
	assert.True(t, creado.Activo)

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "valen", Password: "parrilla-2026"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, model.RolOperador, resp.Usuario.Rol)

	renovado, err := svc.Refresh(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "valen", renovado.Usuario.Username)
}

func TestAuthService_LoginRechazos(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correcta"), bcrypt.MinCost)
	require.NoError(t, err)
	usuario := &model.Usuario{Username: "ana", Nombre: "Ana", PasswordHash: string(hash), Rol: model.RolAdmin, Activo: true}
	require.NoError(t, repo.Create(ctx, usuario))

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "incorrecta"})
	assert.Error(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "correcta"})
	assert.Error(t, err)

	require.NoError(t, repo.SoftDelete(ctx, usuario.ID))
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "correcta"})
	assert.Error(t, err, "una cuenta desactivada no puede iniciar sesión")
}

func TestAuthService_RefreshTokenInvalido(t *testing.T) {
	svc := NewAuthService(newStubUsuarioRepo(), testAuthConfig())

	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.Error(t, err)
}

func TestAuthService_ActualizarCambiaRolYPassword(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	creado, err := svc.CrearUsuario(ctx, dto.CrearUsuarioRequest{
		Username: "marco",
		Password: "clave-inicial",
		Nombre:   "Marco",
		Rol:      model.RolOperador,
	})
	require.NoError(t, err)

	nuevoRol := model.RolAdmin
	nuevaClave := "clave-renovada"
	actualizado, err := svc.ActualizarUsuario(ctx, mustUUID(t, creado.ID), dto.ActualizarUsuarioRequest{
		Rol:      &nuevoRol,
		Password: &nuevaClave,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolAdmin, actualizado.Rol)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "marco", Password: "clave-inicial"})
	assert.Error(t, err)
	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "marco", Password: nuevaClave})
	require.NoError(t, err)
	assert.Equal(t, model.RolAdmin, resp.Usuario.Rol)
}

func TestAuthService_ListarFiltraInactivos(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	activo, err := svc.CrearUsuario(ctx, dto.CrearUsuarioRequest{Username: "activa", Password: "12345678", Nombre: "Activa", Rol: model.RolOperador})
	require.NoError(t, err)
	baja, err := svc.CrearUsuario(ctx, dto.CrearUsuarioRequest{Username: "baja", Password: "12345678", Nombre: "Baja", Rol: model.RolOperador})
	require.NoError(t, err)
	require.NoError(t, svc.DesactivarUsuario(ctx, mustUUID(t, baja.ID)))

	visibles, err := svc.ListarUsuarios(ctx, false)
	require.NoError(t, err)
	require.Len(t, visibles, 1)
	assert.Equal(t, activo.Username, visibles[0].Username)

	todos, err := svc.ListarUsuarios(ctx, true)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
