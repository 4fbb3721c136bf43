package repository

import "github.com/jhoicas/reviews-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Upsert inserta la empresa o, si ya existe una fila con ese CompanyID,
	// sobreescribe name y website (full overwrite, el id interno se conserva).
	// Devuelve la fila resultante. Debe ser atómico en la capa de storage:
	// dos inserts concurrentes del mismo CompanyID no pueden duplicar filas.
	Upsert(company *entity.Company) (*entity.Company, error)
	// Count devuelve el total de empresas registradas (lo consume el gauge
	// de métricas).
	Count() (int, error)
}
