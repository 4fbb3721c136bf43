// Package validation acumula errores de validación por campo para reportarlos
// todos juntos en una sola respuesta 400, con el formato
// {"campo": ["mensaje", ...], "company": {"campo": [...]}, "non_field_errors": [...]}.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// NonFieldErrors es la clave para errores de formulario (cross-field).
const NonFieldErrors = "non_field_errors"

// Mensajes de validación del API.
const (
	MsgFieldRequired      = "This field is required."
	MsgValidInteger       = "A valid integer is required."
	MsgValidEmail         = "Enter a valid email address."
	MsgValidURL           = "Enter a valid URL."
	MsgPasswordsMustMatch = "The passwords must be the same."
	MsgPasswordTooShort   = "This password is too short. It must contain at least 8 characters."
	MsgPasswordNumeric    = "This password is entirely numeric."
	MsgEmailTaken         = "user with this email already exists."
	MsgInvalidCredentials = "Unable to log in with provided credentials."
)

// MsgMinValue mensaje para violación de valor mínimo.
func MsgMinValue(min int) string {
	return fmt.Sprintf("Ensure this value is greater than or equal to %d.", min)
}

// MsgMaxValue mensaje para violación de valor máximo.
func MsgMaxValue(max int) string {
	return fmt.Sprintf("Ensure this value is less than or equal to %d.", max)
}

// MsgMaxLength mensaje para violación de longitud máxima.
func MsgMaxLength(max int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", max)
}

// Errors mapea nombre de campo -> lista de mensajes.
type Errors map[string][]string

// Add agrega un mensaje a un campo.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Error es un error de validación completo: errores de campo del objeto raíz
// más errores anidados por sub-objeto (ej. "company"). Implementa error para
// propagarse desde los use cases hasta el boundary HTTP.
type Error struct {
	Fields Errors
	Nested map[string]Errors
}

// NewError construye un Error vacío.
func NewError() *Error {
	return &Error{Fields: Errors{}, Nested: map[string]Errors{}}
}

// Add agrega un mensaje a un campo del objeto raíz.
func (e *Error) Add(field, msg string) {
	e.Fields.Add(field, msg)
}

// AddNonField agrega un error de formulario (no asociado a un campo).
func (e *Error) AddNonField(msg string) {
	e.Fields.Add(NonFieldErrors, msg)
}

// AddNested agrega un mensaje a un campo de un sub-objeto.
func (e *Error) AddNested(object, field, msg string) {
	if e.Nested[object] == nil {
		e.Nested[object] = Errors{}
	}
	e.Nested[object].Add(field, msg)
}

// HasField informa si el campo raíz ya tiene errores.
func (e *Error) HasField(field string) bool {
	return len(e.Fields[field]) > 0
}

// HasErrors informa si se acumuló al menos un error.
func (e *Error) HasErrors() bool {
	if len(e.Nested) > 0 {
		return true
	}
	return len(e.Fields) > 0
}

// Body devuelve el cuerpo JSON del error 400: campos del raíz más los
// sub-objetos anidados como mapas propios.
func (e *Error) Body() map[string]interface{} {
	body := make(map[string]interface{}, len(e.Fields)+len(e.Nested))
	for field, msgs := range e.Fields {
		body[field] = msgs
	}
	for object, errs := range e.Nested {
		body[object] = errs
	}
	return body
}

// Error implementa la interfaz error (resumen legible, orden estable).
func (e *Error) Error() string {
	var fields []string
	for f := range e.Fields {
		fields = append(fields, f)
	}
	for o := range e.Nested {
		fields = append(fields, o)
	}
	sort.Strings(fields)
	return "validación fallida: " + strings.Join(fields, ", ")
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsEmail valida sintaxis de email.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsURL valida que s sea una URL absoluta http(s).
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
