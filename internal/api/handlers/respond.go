package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// максимальный размер JSON-тела запроса
const maxBodySize = 1 << 20

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`

	// Fields заполнено для ошибок валидации: поле -> описание проблемы
	Fields map[string]string `json:"fields,omitempty"`
}

// DecodeJSON декодирует JSON-тело запроса в dst
// Неизвестные поля отклоняются
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}

// RespondJSON пишет JSON-ответ с указанным статусом
// payload == nil дает пустое тело
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	// заголовки уже отправлены, ошибку кодирования остается проигнорировать
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку с произвольным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Message: message})
}

// RespondBadRequest пишет 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondValidationError пишет 400 с пополевыми ошибками
// Если err не является ошибкой валидации, отдает общее сообщение
func RespondValidationError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		RespondJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Fields:  ve.Fields,
		})
		return
	}

	RespondBadRequest(w, err.Error())
}

// RespondUnauthorized пишет 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden пишет 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound пишет 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict пишет 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError пишет 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
}
