package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ApiResponse respuesta genérica de operaciones sin cuerpo (p. ej. borrados).
type ApiResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

// DateRangeQuery ventana de consulta en instantes locales sin zona (2006-01-02T15:04:05).
type DateRangeQuery struct {
	StartTime string `query:"startTime" validate:"required"`
	EndTime   string `query:"endTime" validate:"required"`
}
