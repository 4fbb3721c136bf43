package entity

import "time"

// Límites de campos de Review (coinciden con el CHECK de la tabla reviews).
const (
	ReviewRatingMin   = 1
	ReviewRatingMax   = 5
	ReviewTitleMax    = 64
	ReviewSummaryMax  = 10000
	CompanyNameMax    = 64
)

// Review es una reseña de una empresa escrita por un usuario.
// ReviewerID, IPAddress y SubmissionDate son write-once: los deriva el servidor
// al crear y nunca se aceptan del cliente.
type Review struct {
	ID             string
	Rating         int // 1..5
	Title          string
	Summary        string
	IPAddress      string
	SubmissionDate time.Time // solo fecha, UTC, asignada al crear
	CompanyID      string    // id interno de la empresa
	ReviewerID     string
	CreatedAt      time.Time
}

// ReviewDetail es el modelo de lectura de una reseña con sus referencias resueltas.
type ReviewDetail struct {
	Review   Review
	Company  Company
	Reviewer User
}
