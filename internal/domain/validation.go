package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError ошибка валидации входных данных
// Несет ошибки по конкретным полям, которые отдаются вызывающей стороне как есть
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError создает пустую ошибку валидации
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add добавляет ошибку по полю
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// HasErrors возвращает true, если накоплена хотя бы одна ошибка
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error реализует error
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}

	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}

	return "validation error: " + strings.Join(parts, "; ")
}
