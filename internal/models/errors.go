package models

import (
	"errors"
	"fmt"
)

// Ошибки ядра, по которым HTTP-слой выбирает код ответа.
// Ошибки хранилища не входят в таксономию и оборачиваются как есть.
var (
	// ErrNotFound - инцидент с указанным id не существует
	ErrNotFound = errors.New("incident not found")

	// ErrPermissionDenied - смена статуса запрошена не автором инцидента
	ErrPermissionDenied = errors.New("not authorized to update this incident")
)

// ValidationError - ошибка валидации входных данных (координаты вне
// диапазона, неизвестный тип инцидента, вид голоса или статус)
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError создает ValidationError с форматированным сообщением
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation сообщает, является ли ошибка (или ее причина) ошибкой валидации
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
