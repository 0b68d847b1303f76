// Package apperr define la taxonomía de errores compartida por stores y servicios.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage error")
	ErrQuery      = errors.New("query error")
)

// ValidationError: el caller mandó datos que violan una regla de negocio.
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

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StorageError envuelve una falla de persistencia (conexión, constraint, commit).
type StorageError struct {
	Entity string
	Op     string
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Op, e.Entity, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func Storage(entity, op string, err error) error {
	if err == nil {
		return nil
	}
	// No re-envolver: el primer contexto es el útil.
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Entity: entity, Op: op, Err: err}
}

// QueryError: falla de lectura en búsquedas/listados.
type QueryError struct {
	Entity string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s failed: %v", e.Entity, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func (e *QueryError) Is(target error) bool { return target == ErrQuery }

func Query(entity string, err error) error {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}
	return &QueryError{Entity: entity, Err: err}
}
