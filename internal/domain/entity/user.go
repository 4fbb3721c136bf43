package entity

import (
	"strings"
	"time"
)

// UserNameMax longitud máxima (en caracteres) de first_name y last_name.
const UserNameMax = 150

// User representa una cuenta registrada vía sign-up.
// IsStaff e IsSuperuser solo se asignan por vía administrativa, nunca desde el sign-up.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string // opcional, "" por defecto
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName devuelve la representación del usuario para mostrar
// (nombre completo, o el email si no hay nombre).
func (u *User) DisplayName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Email
	}
	return full
}
