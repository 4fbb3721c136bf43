// Package auth implementa los casos de uso de cuentas: sign-up y login.
// El sign-up solo crea cuentas; no existe operación de edición en esta
// interfaz (la mutación de usuarios es una vía administrativa aparte).
package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/reviews-api/internal/application/dto"
	"github.com/jhoicas/reviews-api/internal/application/validation"
	"github.com/jhoicas/reviews-api/internal/domain"
	"github.com/jhoicas/reviews-api/internal/domain/entity"
	"github.com/jhoicas/reviews-api/internal/domain/repository"
	"github.com/jhoicas/reviews-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// SignUp valida el payload completo (todos los errores juntos), verifica que el
// email no esté registrado, hashea el password con bcrypt y persiste la cuenta.
// confirm_password se descarta tras la comparación. Los flags is_staff e
// is_superuser nacen siempre en false: el request no puede asignarlos.
func (uc *AuthUseCase) SignUp(in dto.SignUpRequest) (*dto.UserResponse, error) {
	verr := in.Validate()

	if !verr.HasField("email") {
		existing, err := uc.userRepo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			verr.Add("email", validation.MsgEmailTaken)
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		// carrera entre el chequeo y el insert: el constraint único decide
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			verr.Add("email", validation.MsgEmailTaken)
			return nil, verr
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y genera el JWT. Credenciales incorrectas se
// reportan como error de validación de formulario (400), sin distinguir si el
// email existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	verr := in.Validate()
	if verr.HasErrors() {
		return nil, verr
	}

	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		verr.AddNonField(validation.MsgInvalidCredentials)
		return nil, verr
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		verr.AddNonField(validation.MsgInvalidCredentials)
		return nil, verr
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}
