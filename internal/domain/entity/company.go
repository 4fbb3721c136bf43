package entity

import "time"

// Company representa una empresa reseñable, identificada por su CompanyID externo.
// A lo sumo existe una fila por CompanyID; el upsert de reseñas sobreescribe
// Name y Website con los valores entrantes (last-write-wins).
type Company struct {
	ID        string // id interno (uuid)
	Name      string
	CompanyID int64  // id externo único, distinto del id interno
	Website   string // opcional, "" por defecto
	CreatedAt time.Time
	UpdatedAt time.Time
}
