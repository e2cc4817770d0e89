package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/analysis"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/ingestion"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/parsing"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/schemas"
	"github.com/go-playground/validator/v10"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unsupported *ingestion.UnsupportedInputError
		apiErr      *parsing.APICallError
		parseErr    *parsing.ParseError
		schemaErr   *schemas.ValidationError
		fieldErr    *ErrValidation
		invalid     validator.ValidationErrors
		tooLarge    *http.MaxBytesError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &unsupported):
		if unsupported.UnsupportedType {
			return http.StatusUnsupportedMediaType
		}
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.As(err, &parseErr), errors.As(err, &schemaErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fieldErr), errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.Is(err, analysis.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
