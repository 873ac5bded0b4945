package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizpanel-api/internal/application/auth"
	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/domain"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvrepo"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvstore"
	pkgjwt "github.com/jhoicas/bizpanel-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuth() *auth.AuthUseCase {
	repo := kvrepo.NewUserRepository(kvstore.NewMemoryStore())
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "bizpanel-test"})
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{Name: "Ana", Email: "Ana@Ejemplo.com", Password: "secreto", ConfirmPassword: "secreto"}
}

func TestRegisterYLogin(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()

	user, err := uc.Register(ctx, validRegister())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.OnboardingCompleted)
	assert.NotNil(t, user.BusinessCategories)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@ejemplo.com", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)

	userID, email, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "Ana@Ejemplo.com", email)

	me, err := uc.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", me.Name)
}

func TestRegister_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()

	in := validRegister()
	in.ConfirmPassword = "otro"
	_, err := uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	in = validRegister()
	in.Name = " "
	_, err = uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRegister()
	in.Password, in.ConfirmPassword = "123", "123"
	_, err = uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRegister()
	in.Email = "sin-arroba"
	_, err = uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()

	_, err := uc.Register(ctx, validRegister())
	require.NoError(t, err)

	in := validRegister()
	in.Email = "ANA@ejemplo.com"
	_, err = uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()
	_, err := uc.Register(ctx, validRegister())
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@ejemplo.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@ejemplo.com", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "email inexistente responde igual que password incorrecta")

	_, err = uc.Me(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
