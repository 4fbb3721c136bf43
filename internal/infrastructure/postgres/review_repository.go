package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/reviews-api/internal/domain/entity"
	"github.com/jhoicas/reviews-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador de persistencia para reseñas. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

const reviewDetailColumns = `
	r.id, r.rating, r.title, r.summary, r.ip_address, r.submission_date,
	r.company_id, r.reviewer_id, r.created_at,
	c.id, c.name, c.company_id, c.website, c.created_at, c.updated_at,
	u.id, u.email, u.first_name, u.last_name, u.is_staff, u.is_superuser, u.created_at, u.updated_at`

// Create persiste una nueva reseña.
func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, rating, title, summary, ip_address, submission_date, company_id, reviewer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		review.ID, review.Rating, review.Title, review.Summary, review.IPAddress,
		review.SubmissionDate, review.CompanyID, review.ReviewerID, review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByID obtiene una reseña con su empresa y autor resueltos.
func (r *ReviewRepo) GetByID(id string) (*entity.ReviewDetail, error) {
	query := `
		SELECT ` + reviewDetailColumns + `
		FROM reviews r
		JOIN companies c ON c.id = r.company_id
		JOIN users u ON u.id = r.reviewer_id
		WHERE r.id = $1`
	var d entity.ReviewDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(scanReviewDetail(&d)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &d, nil
}

// ListByReviewer lista las reseñas del usuario indicado, las más recientes primero.
func (r *ReviewRepo) ListByReviewer(reviewerID string) ([]*entity.ReviewDetail, error) {
	query := `
		SELECT ` + reviewDetailColumns + `
		FROM reviews r
		JOIN companies c ON c.id = r.company_id
		JOIN users u ON u.id = r.reviewer_id
		WHERE r.reviewer_id = $1
		ORDER BY r.created_at DESC, r.id`
	rows, err := r.q.Query(context.Background(), query, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReviewDetail
	for rows.Next() {
		var d entity.ReviewDetail
		if err := rows.Scan(scanReviewDetail(&d)...); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func scanReviewDetail(d *entity.ReviewDetail) []any {
	return []any{
		&d.Review.ID, &d.Review.Rating, &d.Review.Title, &d.Review.Summary,
		&d.Review.IPAddress, &d.Review.SubmissionDate,
		&d.Review.CompanyID, &d.Review.ReviewerID, &d.Review.CreatedAt,
		&d.Company.ID, &d.Company.Name, &d.Company.CompanyID, &d.Company.Website,
		&d.Company.CreatedAt, &d.Company.UpdatedAt,
		&d.Reviewer.ID, &d.Reviewer.Email, &d.Reviewer.FirstName, &d.Reviewer.LastName,
		&d.Reviewer.IsStaff, &d.Reviewer.IsSuperuser, &d.Reviewer.CreatedAt, &d.Reviewer.UpdatedAt,
	}
}
