// Package server provides the HTTP REST API for the job matcher.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/job-matcher/internal/ranking"
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
		validationErr *ErrValidation
		inputErr      *ranking.InputError
		strategyErr   *ranking.StrategyError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &inputErr), errors.As(err, &strategyErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
