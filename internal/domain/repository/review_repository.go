package repository

import "github.com/jhoicas/reviews-api/internal/domain/entity"

// ReviewRepository define el puerto de persistencia para Review (DIP).
// El ciclo de vida de una reseña es solo-creación: no hay Update ni Delete.
type ReviewRepository interface {
	Create(review *entity.Review) error
	GetByID(id string) (*entity.ReviewDetail, error)
	// ListByReviewer devuelve únicamente las reseñas del usuario indicado,
	// con empresa y autor resueltos, en orden estable (más recientes primero).
	ListByReviewer(reviewerID string) ([]*entity.ReviewDetail, error)
}
