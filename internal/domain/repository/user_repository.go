package repository

import "github.com/jhoicas/reviews-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// No existe Update: el sign-up solo crea cuentas (la edición es una
// operación administrativa fuera de esta API).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail busca por email sin distinguir mayúsculas.
	GetByEmail(email string) (*entity.User, error)
}
