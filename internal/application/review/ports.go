package review

import (
	"context"

	"github.com/jhoicas/reviews-api/internal/domain/entity"
	"github.com/jhoicas/reviews-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// El upsert de company y el insert de la reseña deben confirmar o revertir
// juntos: nunca queda una reseña sin su empresa resuelta, ni al revés.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		reviewRepo repository.ReviewRepository,
	) error) error
}

// HistoryPDFGenerator genera el PDF del historial de reseñas de un usuario.
// La implementación vive en infrastructure.
type HistoryPDFGenerator interface {
	GenerateHistoryPDF(ctx context.Context, reviewer *entity.User, reviews []*entity.ReviewDetail) ([]byte, error)
}
