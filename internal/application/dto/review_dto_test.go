package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reviews-api/internal/application/dto"
	"github.com/jhoicas/reviews-api/internal/application/validation"
)

// defaultReviewRequest arma un payload válido; los tests lo mutan por caso.
func defaultReviewRequest() dto.CreateReviewRequest {
	return dto.CreateReviewRequest{
		Rating:  dto.IntField{Present: true, Valid: true, Value: 5},
		Title:   "Excelente servicio",
		Summary: "Atención rápida y sin problemas.",
		Company: &dto.ReviewCompanyRequest{
			Name:      "Acme Corp",
			CompanyID: dto.IntField{Present: true, Valid: true, Value: 42},
			Website:   "https://acme.example.com",
		},
	}
}

func TestIntField_DistingueAusenteDeInvalido(t *testing.T) {
	var payload struct {
		Rating    dto.IntField `json:"rating"`
		CompanyID dto.IntField `json:"company_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"company_id": "a"}`), &payload))

	assert.False(t, payload.Rating.Present, "campo ausente: Present=false")
	assert.True(t, payload.CompanyID.Present)
	assert.False(t, payload.CompanyID.Valid, "string no es un entero válido")

	require.NoError(t, json.Unmarshal([]byte(`{"rating": 3}`), &payload))
	assert.True(t, payload.Rating.Present)
	assert.True(t, payload.Rating.Valid)
	assert.Equal(t, int64(3), payload.Rating.Value)
}

func TestIntField_RechazaDecimales(t *testing.T) {
	var payload struct {
		Rating dto.IntField `json:"rating"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"rating": 3.5}`), &payload))
	assert.True(t, payload.Rating.Present)
	assert.False(t, payload.Rating.Valid)
}

func TestCreateReview_PayloadValidoPasa(t *testing.T) {
	in := defaultReviewRequest()
	assert.False(t, in.Validate().HasErrors())
}

func TestCreateReview_RatingFueraDeRango(t *testing.T) {
	cases := []struct {
		value   int64
		message string
	}{
		{0, "Ensure this value is greater than or equal to 1."},
		{6, "Ensure this value is less than or equal to 5."},
	}
	for _, tc := range cases {
		in := defaultReviewRequest()
		in.Rating = dto.IntField{Present: true, Valid: true, Value: tc.value}
		verr := in.Validate()
		assert.Contains(t, verr.Fields["rating"], tc.message)
	}
}

func TestCreateReview_RatingLimitesValidos(t *testing.T) {
	for _, v := range []int64{1, 5} {
		in := defaultReviewRequest()
		in.Rating = dto.IntField{Present: true, Valid: true, Value: v}
		assert.False(t, in.Validate().HasErrors(), "rating %d debe ser válido", v)
	}
}

func TestCreateReview_CamposRequeridos(t *testing.T) {
	in := defaultReviewRequest()
	in.Rating = dto.IntField{}
	in.Title = ""
	in.Summary = ""
	verr := in.Validate()

	for _, field := range []string{"rating", "title", "summary"} {
		assert.Contains(t, verr.Fields[field], validation.MsgFieldRequired, "campo %s", field)
	}
}

func TestCreateReview_LongitudesMaximas(t *testing.T) {
	in := defaultReviewRequest()
	in.Title = strings.Repeat("a", 65)
	in.Summary = strings.Repeat("b", 10001)
	verr := in.Validate()

	assert.Contains(t, verr.Fields["title"], "Ensure this field has no more than 64 characters.")
	assert.Contains(t, verr.Fields["summary"], "Ensure this field has no more than 10000 characters.")
}

func TestCreateReview_LongitudesCuentanCaracteresNoBytes(t *testing.T) {
	// 64 caracteres acentuados ocupan 128 bytes pero siguen dentro del límite
	in := defaultReviewRequest()
	in.Title = strings.Repeat("á", 64)
	in.Summary = strings.Repeat("ñ", 10000)
	in.Company.Name = strings.Repeat("é", 64)
	assert.False(t, in.Validate().HasErrors())

	in = defaultReviewRequest()
	in.Title = strings.Repeat("á", 65)
	in.Company.Name = strings.Repeat("é", 65)
	verr := in.Validate()
	assert.Contains(t, verr.Fields["title"], "Ensure this field has no more than 64 characters.")
	assert.Contains(t, verr.Nested["company"]["name"], "Ensure this field has no more than 64 characters.")
}

func TestCreateReview_ErroresDeCompanyAnidados(t *testing.T) {
	in := defaultReviewRequest()
	in.Company.Name = strings.Repeat("x", 65)
	in.Company.CompanyID = dto.IntField{Present: true, Valid: false}
	in.Company.Website = "invalidowebsite"
	verr := in.Validate()

	require.NotNil(t, verr.Nested["company"])
	assert.Contains(t, verr.Nested["company"]["name"], "Ensure this field has no more than 64 characters.")
	assert.Contains(t, verr.Nested["company"]["company_id"], "A valid integer is required.")
	assert.Contains(t, verr.Nested["company"]["website"], "Enter a valid URL.")
}

func TestCreateReview_CompanyRequerida(t *testing.T) {
	in := defaultReviewRequest()
	in.Company = nil
	verr := in.Validate()
	assert.Contains(t, verr.Fields["company"], validation.MsgFieldRequired)
}

func TestCreateReview_WebsiteOpcional(t *testing.T) {
	in := defaultReviewRequest()
	in.Company.Website = ""
	assert.False(t, in.Validate().HasErrors(), "website vacío es válido")
}

func TestCreateReview_TodosLosErroresJuntos(t *testing.T) {
	// ningún fail-fast: un payload con varios problemas reporta todos
	in := dto.CreateReviewRequest{
		Rating:  dto.IntField{Present: true, Valid: true, Value: 0},
		Company: &dto.ReviewCompanyRequest{},
	}
	verr := in.Validate()

	assert.True(t, verr.HasField("rating"))
	assert.True(t, verr.HasField("title"))
	assert.True(t, verr.HasField("summary"))
	assert.Contains(t, verr.Nested["company"]["name"], validation.MsgFieldRequired)
	assert.Contains(t, verr.Nested["company"]["company_id"], validation.MsgFieldRequired)
}
