// Package review implementa los casos de uso de reseñas: alta con upsert de
// empresa, listado acotado al autor y exportación del historial en PDF.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/reviews-api/internal/application/dto"
	"github.com/jhoicas/reviews-api/internal/domain"
	"github.com/jhoicas/reviews-api/internal/domain/entity"
	"github.com/jhoicas/reviews-api/internal/domain/repository"
)

// RequestMeta es el contexto explícito del request autenticado: identidad del
// caller e IP del cliente. Se pasa a cada operación en lugar de leerse de
// estado global, y es la única fuente de reviewer e ip_address.
type RequestMeta struct {
	ReviewerID string
	ClientIP   string
}

// ReviewUseCase casos de uso de reseñas.
type ReviewUseCase struct {
	tx         TxRunner
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	pdf        HistoryPDFGenerator
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(tx TxRunner, reviewRepo repository.ReviewRepository, userRepo repository.UserRepository, pdf HistoryPDFGenerator) *ReviewUseCase {
	return &ReviewUseCase{tx: tx, reviewRepo: reviewRepo, userRepo: userRepo, pdf: pdf}
}

// Create valida el payload completo (errores de company anidados), resuelve la
// empresa por su company_id externo (upsert last-write-wins) y persiste la
// reseña, todo en una transacción. reviewer, ip_address y submission_date los
// fija el servidor; cualquier fallo de validación aborta sin tocar la DB.
// La respuesta se construye releyendo la reseña persistida, de modo que lo que
// ve el caller es lo que quedó en la DB.
func (uc *ReviewUseCase) Create(ctx context.Context, meta RequestMeta, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if verr := in.Validate(); verr.HasErrors() {
		return nil, verr
	}

	reviewer, err := uc.userRepo.GetByID(meta.ReviewerID)
	if err != nil {
		return nil, err
	}
	if reviewer == nil {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Company.Name,
		CompanyID: in.Company.CompanyID.Value,
		Website:   in.Company.Website,
		CreatedAt: now,
		UpdatedAt: now,
	}
	rev := &entity.Review{
		ID:             uuid.New().String(),
		Rating:         int(in.Rating.Value),
		Title:          in.Title,
		Summary:        in.Summary,
		IPAddress:      meta.ClientIP,
		SubmissionDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		ReviewerID:     reviewer.ID,
		CreatedAt:      now,
	}

	err = uc.tx.Run(ctx, func(companyRepo repository.CompanyRepository, reviewRepo repository.ReviewRepository) error {
		persisted, err := companyRepo.Upsert(company)
		if err != nil {
			return fmt.Errorf("upsert company: %w", err)
		}
		rev.CompanyID = persisted.ID
		if err := reviewRepo.Create(rev); err != nil {
			return fmt.Errorf("insert review: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	detail, err := uc.reviewRepo.GetByID(rev.ID)
	if err != nil {
		return nil, fmt.Errorf("releer reseña: %w", err)
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return toReviewResponse(detail), nil
}

// ListByReviewer devuelve exactamente las reseñas del caller, nunca las de otro
// usuario.
func (uc *ReviewUseCase) ListByReviewer(ctx context.Context, meta RequestMeta) ([]*dto.ReviewResponse, error) {
	details, err := uc.reviewRepo.ListByReviewer(meta.ReviewerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReviewResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toReviewResponse(d))
	}
	return out, nil
}

// ExportHistoryPDF genera el historial de reseñas del caller como PDF.
// Devuelve los bytes y el nombre de archivo sugerido.
func (uc *ReviewUseCase) ExportHistoryPDF(ctx context.Context, meta RequestMeta) ([]byte, string, error) {
	reviewer, err := uc.userRepo.GetByID(meta.ReviewerID)
	if err != nil {
		return nil, "", err
	}
	if reviewer == nil {
		return nil, "", domain.ErrUnauthorized
	}
	details, err := uc.reviewRepo.ListByReviewer(meta.ReviewerID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.pdf.GenerateHistoryPDF(ctx, reviewer, details)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}
	filename := fmt.Sprintf("reviews-%s.pdf", time.Now().UTC().Format("2006-01-02"))
	return pdfBytes, filename, nil
}

func toReviewResponse(d *entity.ReviewDetail) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:             d.Review.ID,
		Rating:         d.Review.Rating,
		Title:          d.Review.Title,
		Summary:        d.Review.Summary,
		IPAddress:      d.Review.IPAddress,
		SubmissionDate: d.Review.SubmissionDate.Format("2006-01-02"),
		Company: dto.ReviewCompanyResponse{
			Name:      d.Company.Name,
			CompanyID: d.Company.CompanyID,
			Website:   d.Company.Website,
		},
		Reviewer: d.Reviewer.DisplayName(),
	}
}
