package dto

import (
	"time"
	"unicode/utf8"

	"github.com/jhoicas/reviews-api/internal/application/validation"
	"github.com/jhoicas/reviews-api/internal/domain/entity"
)

// SignUpRequest entrada para el registro (password en texto, se hashea en el use case).
// El struct es la allow-list del endpoint: campos no listados aquí (is_staff,
// is_superuser, ...) nunca llegan a la cuenta creada.
type SignUpRequest struct {
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"first_name" validate:"required,max=150"`
	LastName        string `json:"last_name" validate:"omitempty,max=150"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// Validate acumula los errores de campo y el error de formulario de
// confirmación. El match password/confirm_password solo se evalúa cuando
// ambos campos pasaron sus chequeos propios.
func (r *SignUpRequest) Validate() *validation.Error {
	verr := validation.NewError()

	if r.Email == "" {
		verr.Add("email", validation.MsgFieldRequired)
	} else if !validation.IsEmail(r.Email) {
		verr.Add("email", validation.MsgValidEmail)
	}

	if r.FirstName == "" {
		verr.Add("first_name", validation.MsgFieldRequired)
	} else if utf8.RuneCountInString(r.FirstName) > entity.UserNameMax {
		verr.Add("first_name", validation.MsgMaxLength(entity.UserNameMax))
	}

	if utf8.RuneCountInString(r.LastName) > entity.UserNameMax {
		verr.Add("last_name", validation.MsgMaxLength(entity.UserNameMax))
	}

	if r.Password == "" {
		verr.Add("password", validation.MsgFieldRequired)
	} else {
		for _, msg := range validatePasswordStrength(r.Password) {
			verr.Add("password", msg)
		}
	}

	if r.ConfirmPassword == "" {
		verr.Add("confirm_password", validation.MsgFieldRequired)
	}

	if !verr.HasField("password") && !verr.HasField("confirm_password") &&
		r.Password != r.ConfirmPassword {
		verr.AddNonField(validation.MsgPasswordsMustMatch)
	}

	return verr
}

// validatePasswordStrength aplica la política de contraseñas: longitud mínima
// de 8 y no completamente numérica.
func validatePasswordStrength(password string) []string {
	var msgs []string
	if len(password) < 8 {
		msgs = append(msgs, validation.MsgPasswordTooShort)
	}
	if isEntirelyNumeric(password) {
		msgs = append(msgs, validation.MsgPasswordNumeric)
	}
	return msgs
}

func isEntirelyNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate reporta los campos faltantes.
func (r *LoginRequest) Validate() *validation.Error {
	verr := validation.NewError()
	if r.Email == "" {
		verr.Add("email", validation.MsgFieldRequired)
	}
	if r.Password == "" {
		verr.Add("password", validation.MsgFieldRequired)
	}
	return verr
}

// UserResponse salida de un usuario (los campos de password nunca se serializan).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
