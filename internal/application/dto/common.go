package dto

import "github.com/shopspring/decimal"

func init() {
	// El frontend espera números JSON (no strings) para montos y agregados.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout formato de fechas de proyecto en el API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
