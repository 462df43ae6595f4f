package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlreadyCheckedOut  = errors.New("el visitante ya registró su salida")
)

// FieldErrors agrupa errores de validación por campo. Los handlers lo mapean
// a una respuesta 400 con el detalle por campo; cuando la validación falla no
// se persiste nada.
type FieldErrors map[string]string

// Error implementa error con una lista estable campo: mensaje.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Add registra el error del campo si no existe ya uno (gana el primero).
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// AsFieldErrors extrae un FieldErrors de la cadena de errores, si lo hay.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
