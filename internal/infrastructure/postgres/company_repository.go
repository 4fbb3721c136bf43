package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/reviews-api/internal/domain/entity"
	"github.com/jhoicas/reviews-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Upsert inserta la empresa o sobreescribe name y website de la fila existente
// con el mismo company_id. El ON CONFLICT hace al constraint único el árbitro
// final de la carrera check-then-act: dos inserts concurrentes del mismo
// company_id nunca duplican filas. Devuelve la fila resultante (con el id
// interno original si ya existía).
func (r *CompanyRepo) Upsert(company *entity.Company) (*entity.Company, error) {
	query := `
		INSERT INTO companies (id, name, company_id, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id)
		DO UPDATE SET name = EXCLUDED.name, website = EXCLUDED.website, updated_at = EXCLUDED.updated_at
		RETURNING id, name, company_id, website, created_at, updated_at`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query,
		company.ID, company.Name, company.CompanyID, company.Website,
		company.CreatedAt, company.UpdatedAt,
	).Scan(&c.ID, &c.Name, &c.CompanyID, &c.Website, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert company: %w", err)
	}
	return &c, nil
}

// Count devuelve el total de empresas.
func (r *CompanyRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM companies`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return n, nil
}
