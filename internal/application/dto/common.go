package dto

import "encoding/json"

// ErrorResponse cuerpo de error HTTP para fallos no-de-validación (401, 405, 500).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IntField es un entero JSON que distingue "ausente" de "no entero", para
// reportar el problema como mensaje de campo en lugar de abortar toda la
// deserialización del cuerpo.
type IntField struct {
	Present bool
	Valid   bool
	Value   int64
}

// UnmarshalJSON acepta cualquier valor JSON; marca Valid solo si es un entero.
func (f *IntField) UnmarshalJSON(b []byte) error {
	f.Present = true
	if err := json.Unmarshal(b, &f.Value); err != nil {
		return nil // no entero: se reporta en validación, no aquí
	}
	f.Valid = true
	return nil
}
