// Package pdf implementa la exportación del historial de reseñas como PDF
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del usuario + email  │  Fecha de exportación │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Empresa | Rating | Título                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: cantidad de reseñas                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreview "github.com/jhoicas/reviews-api/internal/application/review"
	"github.com/jhoicas/reviews-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appreview.HistoryPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa review.HistoryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateHistoryPDF genera el PDF del historial y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateHistoryPDF(
	_ context.Context,
	reviewer *entity.User,
	reviews []*entity.ReviewDetail,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Historial de reseñas", true).
		WithAuthor(reviewer.DisplayName(), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(reviewer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(reviews) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(len(reviews)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + email (izq) y fecha de exportación (der).
func headerRow(reviewer *entity.User) core.Row {
	fecha := time.Now().UTC().Format("02/01/2006")

	return row.New(16).Add(
		col.New(8).Add(
			text.New(reviewer.DisplayName(), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(reviewer.Email, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("HISTORIAL DE RESEÑAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de reseñas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Empresa", 4, align.Left),
		h("Rating", 1, align.Center),
		h("Título", 5, align.Left),
	)
}

// tableRows: una fila por reseña.
func tableRows(reviews []*entity.ReviewDetail) []core.Row {
	result := make([]core.Row, 0, len(reviews))
	for _, d := range reviews {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				d.Review.SubmissionDate.Format("02/01/2006"),
				props.Text{Size: 8, Top: 1},
			)),
			col.New(4).Add(text.New(
				d.Company.Name,
				props.Text{Size: 8, Top: 1},
			)),
			col.New(1).Add(text.New(
				strings.Repeat("★", d.Review.Rating),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				d.Review.Title,
				props.Text{Size: 8, Top: 1},
			)),
		))
	}
	return result
}

// totalRow: cantidad total de reseñas exportadas.
func totalRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Total de reseñas: %d", count),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2},
		)),
	)
}
