package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reviews-api/internal/application/validation"
)

func TestError_AcumulaErroresPorCampo(t *testing.T) {
	verr := validation.NewError()
	require.False(t, verr.HasErrors())

	verr.Add("title", validation.MsgFieldRequired)
	verr.Add("rating", validation.MsgMinValue(1))
	verr.Add("rating", "otro mensaje")

	assert.True(t, verr.HasErrors())
	assert.True(t, verr.HasField("rating"))
	assert.False(t, verr.HasField("summary"))
	assert.Len(t, verr.Fields["rating"], 2, "un campo puede acumular varios mensajes")
}

func TestError_Body_AnidaSubObjetos(t *testing.T) {
	verr := validation.NewError()
	verr.Add("rating", validation.MsgMinValue(1))
	verr.AddNested("company", "company_id", validation.MsgValidInteger)
	verr.AddNonField(validation.MsgPasswordsMustMatch)

	body := verr.Body()

	assert.Equal(t, []string{"Ensure this value is greater than or equal to 1."}, body["rating"])
	assert.Equal(t, []string{"The passwords must be the same."}, body["non_field_errors"])

	company, ok := body["company"].(validation.Errors)
	require.True(t, ok, "los errores de company deben ir como sub-mapa")
	assert.Equal(t, []string{"A valid integer is required."}, company["company_id"])
}

func TestError_SoloNested_HasErrors(t *testing.T) {
	verr := validation.NewError()
	verr.AddNested("company", "name", validation.MsgFieldRequired)
	assert.True(t, verr.HasErrors())
}

func TestMensajes_FormatoDeLimites(t *testing.T) {
	assert.Equal(t, "Ensure this value is greater than or equal to 1.", validation.MsgMinValue(1))
	assert.Equal(t, "Ensure this value is less than or equal to 5.", validation.MsgMaxValue(5))
	assert.Equal(t, "Ensure this field has no more than 64 characters.", validation.MsgMaxLength(64))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, validation.IsEmail("user@example.com"))
	assert.True(t, validation.IsEmail("first.last+tag@sub.example.co"))
	assert.False(t, validation.IsEmail("sin-arroba"))
	assert.False(t, validation.IsEmail("user@"))
	assert.False(t, validation.IsEmail(""))
}

func TestIsURL(t *testing.T) {
	assert.True(t, validation.IsURL("https://example.com"))
	assert.True(t, validation.IsURL("http://example.com/path?q=1"))
	assert.False(t, validation.IsURL("invalidowebsite"))
	assert.False(t, validation.IsURL("ftp://example.com"))
	assert.False(t, validation.IsURL(""))
}
