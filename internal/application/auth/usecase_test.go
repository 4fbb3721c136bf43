package auth_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/reviews-api/internal/application/auth"
	"github.com/jhoicas/reviews-api/internal/application/dto"
	"github.com/jhoicas/reviews-api/internal/application/validation"
	"github.com/jhoicas/reviews-api/internal/domain"
	"github.com/jhoicas/reviews-api/internal/domain/entity"
	"github.com/jhoicas/reviews-api/pkg/jwt"
)

// fakeUserRepo repositorio en memoria con unicidad de email case-insensitive,
// igual que el índice LOWER(email) de postgres.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

var testJWTCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "reviews-api-test"}

func newAuthUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	return auth.NewAuthUseCase(repo, testJWTCfg), repo
}

func signUpRequest() dto.SignUpRequest {
	return dto.SignUpRequest{
		Email:           "ana@example.com",
		FirstName:       "Ana",
		LastName:        "García",
		Password:        "clave-s3gura",
		ConfirmPassword: "clave-s3gura",
	}
}

func asValidationError(t *testing.T, err error) *validation.Error {
	t.Helper()
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	return verr
}

func TestSignUp_CreaUsuarioConHashBcrypt(t *testing.T) {
	uc, repo := newAuthUseCase()

	resp, err := uc.SignUp(signUpRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "ana@example.com", resp.Email)
	assert.Equal(t, "Ana", resp.FirstName)
	assert.NotEmpty(t, resp.ID)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.NotEqual(t, "clave-s3gura", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-s3gura")))
}

func TestSignUp_FlagsDePrivilegioNacenEnFalse(t *testing.T) {
	uc, repo := newAuthUseCase()

	_, err := uc.SignUp(signUpRequest())
	require.NoError(t, err)

	require.Len(t, repo.users, 1)
	assert.False(t, repo.users[0].IsStaff)
	assert.False(t, repo.users[0].IsSuperuser)
}

func TestSignUp_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.SignUp(signUpRequest())
	require.NoError(t, err)

	in := signUpRequest()
	in.Email = "ANA@example.com" // misma cuenta, distinta capitalización
	_, err = uc.SignUp(in)
	verr := asValidationError(t, err)
	assert.Contains(t, verr.Fields["email"], validation.MsgEmailTaken)
}

// racyUserRepo simula dos sign-ups concurrentes: el chequeo previo no ve la
// cuenta pero el insert choca contra el índice único.
type racyUserRepo struct{ fakeUserRepo }

func (r *racyUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (r *racyUserRepo) Create(*entity.User) error               { return domain.ErrEmailAlreadyExists }

func TestSignUp_DuplicadoDetectadoPorConstraint(t *testing.T) {
	uc := auth.NewAuthUseCase(&racyUserRepo{}, testJWTCfg)

	_, err := uc.SignUp(signUpRequest())
	verr := asValidationError(t, err)
	assert.Contains(t, verr.Fields["email"], validation.MsgEmailTaken)
}

func TestSignUp_PasswordsDistintasNoCreanUsuario(t *testing.T) {
	uc, repo := newAuthUseCase()

	in := signUpRequest()
	in.ConfirmPassword = "otra-clave-123"
	_, err := uc.SignUp(in)

	verr := asValidationError(t, err)
	assert.Contains(t, verr.Fields[validation.NonFieldErrors], validation.MsgPasswordsMustMatch)
	assert.Empty(t, repo.users)
}

func TestSignUp_PayloadInvalidoAcumulaErrores(t *testing.T) {
	uc, repo := newAuthUseCase()

	in := dto.SignUpRequest{Email: "no-es-email", Password: "1234567", ConfirmPassword: "1234567"}
	_, err := uc.SignUp(in)

	verr := asValidationError(t, err)
	assert.Contains(t, verr.Fields["email"], validation.MsgValidEmail)
	assert.Contains(t, verr.Fields["first_name"], validation.MsgFieldRequired)
	assert.Contains(t, verr.Fields["password"], validation.MsgPasswordTooShort)
	assert.Empty(t, repo.users)
}

func TestLogin_CredencialesValidasEmitenToken(t *testing.T) {
	uc, _ := newAuthUseCase()
	created, err := uc.SignUp(signUpRequest())
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "clave-s3gura"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, created.ID, resp.User.ID)

	userID, email, err := jwt.Parse(testJWTCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "ana@example.com", email)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.SignUp(signUpRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	verr := asValidationError(t, err)
	assert.Contains(t, verr.Fields[validation.NonFieldErrors], validation.MsgInvalidCredentials)
}

func TestLogin_EmailInexistenteMismoMensaje(t *testing.T) {
	// la respuesta no revela si la cuenta existe
	uc, _ := newAuthUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "cualquiera"})
	verr := asValidationError(t, err)
	assert.Contains(t, verr.Fields[validation.NonFieldErrors], validation.MsgInvalidCredentials)
}

func TestLogin_CamposRequeridos(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Login(dto.LoginRequest{})
	verr := asValidationError(t, err)
	assert.Contains(t, verr.Fields["email"], validation.MsgFieldRequired)
	assert.Contains(t, verr.Fields["password"], validation.MsgFieldRequired)
	assert.NotContains(t, verr.Fields, validation.NonFieldErrors)
}

var errRepoDown = errors.New("repo caído")

type failingUserRepo struct{ fakeUserRepo }

func (r *failingUserRepo) GetByEmail(string) (*entity.User, error) { return nil, errRepoDown }

func TestLogin_ErrorDeRepoSePropaga(t *testing.T) {
	uc := auth.NewAuthUseCase(&failingUserRepo{}, testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "clave-s3gura"})
	require.ErrorIs(t, err, errRepoDown)
}
