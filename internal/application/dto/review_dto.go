package dto

import (
	"unicode/utf8"

	"github.com/jhoicas/reviews-api/internal/application/validation"
	"github.com/jhoicas/reviews-api/internal/domain/entity"
)

// ReviewCompanyRequest sub-objeto company del alta de reseña.
type ReviewCompanyRequest struct {
	Name      string   `json:"name" validate:"required,max=64"`
	CompanyID IntField `json:"company_id" validate:"required"`
	Website   string   `json:"website" validate:"omitempty,url"`
}

// CreateReviewRequest entrada para crear una reseña. reviewer, ip_address y
// submission_date no aparecen aquí: los deriva el servidor del request
// autenticado y cualquier valor enviado por el cliente se descarta.
type CreateReviewRequest struct {
	Rating  IntField              `json:"rating" validate:"required,min=1,max=5"`
	Title   string                `json:"title" validate:"required,max=64"`
	Summary string                `json:"summary" validate:"required,max=10000"`
	Company *ReviewCompanyRequest `json:"company" validate:"required"`
}

// Validate acumula todos los errores de campo, con los del sub-objeto company
// anidados bajo la clave "company". No hay fail-fast: el caller recibe todos
// los problemas en una sola respuesta.
func (r *CreateReviewRequest) Validate() *validation.Error {
	verr := validation.NewError()

	switch {
	case !r.Rating.Present:
		verr.Add("rating", validation.MsgFieldRequired)
	case !r.Rating.Valid:
		verr.Add("rating", validation.MsgValidInteger)
	case r.Rating.Value < entity.ReviewRatingMin:
		verr.Add("rating", validation.MsgMinValue(entity.ReviewRatingMin))
	case r.Rating.Value > entity.ReviewRatingMax:
		verr.Add("rating", validation.MsgMaxValue(entity.ReviewRatingMax))
	}

	// los límites de longitud cuentan caracteres, no bytes (char_length en DB)
	if r.Title == "" {
		verr.Add("title", validation.MsgFieldRequired)
	} else if utf8.RuneCountInString(r.Title) > entity.ReviewTitleMax {
		verr.Add("title", validation.MsgMaxLength(entity.ReviewTitleMax))
	}

	if r.Summary == "" {
		verr.Add("summary", validation.MsgFieldRequired)
	} else if utf8.RuneCountInString(r.Summary) > entity.ReviewSummaryMax {
		verr.Add("summary", validation.MsgMaxLength(entity.ReviewSummaryMax))
	}

	if r.Company == nil {
		verr.Add("company", validation.MsgFieldRequired)
		return verr
	}

	if r.Company.Name == "" {
		verr.AddNested("company", "name", validation.MsgFieldRequired)
	} else if utf8.RuneCountInString(r.Company.Name) > entity.CompanyNameMax {
		verr.AddNested("company", "name", validation.MsgMaxLength(entity.CompanyNameMax))
	}

	switch {
	case !r.Company.CompanyID.Present:
		verr.AddNested("company", "company_id", validation.MsgFieldRequired)
	case !r.Company.CompanyID.Valid:
		verr.AddNested("company", "company_id", validation.MsgValidInteger)
	}

	// website es opcional: solo se valida si viene con valor
	if r.Company.Website != "" && !validation.IsURL(r.Company.Website) {
		verr.AddNested("company", "website", validation.MsgValidURL)
	}

	return verr
}

// ReviewCompanyResponse sub-objeto company en la salida.
type ReviewCompanyResponse struct {
	Name      string `json:"name"`
	CompanyID int64  `json:"company_id"`
	Website   string `json:"website"`
}

// ReviewResponse salida de una reseña. ip_address y submission_date son
// read-only: presentes en la salida, nunca aceptados como entrada.
type ReviewResponse struct {
	ID             string                `json:"id"`
	Rating         int                   `json:"rating"`
	Title          string                `json:"title"`
	Summary        string                `json:"summary"`
	IPAddress      string                `json:"ip_address"`
	SubmissionDate string                `json:"submission_date"` // YYYY-MM-DD
	Company        ReviewCompanyResponse `json:"company"`
	Reviewer       string                `json:"reviewer"` // representación del autor, no su id
}
