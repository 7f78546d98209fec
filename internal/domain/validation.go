package domain

import (
	"errors"
	"fmt"
)

// ValidationError indica parâmetros malformados detectados antes de qualquer
// cálculo. É sempre recuperável localmente: o chamador recebe o erro antes de
// qualquer agregação parcial.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError cria um erro de validação para um campo específico
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError verifica se o erro (ou sua cadeia) é um erro de validação
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
