// Package domain define las entidades, los puertos de persistencia y los
// errores de negocio, sin dependencias de infraestructura.
package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// ValidationError entrada malformada o incompleta; se traduce a HTTP 400.
// El mensaje se devuelve tal cual al cliente.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation construye un ValidationError con formato printf.
func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError documento inexistente; se traduce a HTTP 404 con el
// mensaje "<Resource> not found".
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// NotFound construye un NotFoundError para el recurso indicado.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// StoreError fallo inesperado del almacén de documentos. Op identifica la
// operación ("insert sale", "scan users"). Se registra con detalle y se
// genericiza hacia el cliente como HTTP 500.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return "store: " + e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// Store envuelve un error del almacén con el nombre de la operación.
// Devuelve nil si err es nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
