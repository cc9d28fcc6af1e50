package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

const (
	msgInternalError = "Internal server error"
	msgInvalidQuery  = "Invalid query parameters"
	msgInvalidBody   = "Invalid request body"
)

// ErrorResponse - тело любой ошибки. Errors заполняется только для ошибок валидации.
type ErrorResponse struct {
	Error  string                 `json:"error"`
	Errors []contracts.FieldError `json:"errors,omitempty"`
}

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

func writeFieldErrors(w http.ResponseWriter, message string, errs []contracts.FieldError) {
	RespondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: message, Errors: errs})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondStorageError: ErrNotFound -> 404, все остальное -> 500 без подробностей
func respondStorageError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		WriteJSONError(w, http.StatusNotFound, notFoundMsg)
		return
	}
	contextkeys.LoggerFromContext(r.Context()).Error("Request failed", err, port.Fields{"path": r.URL.Path})
	WriteJSONError(w, http.StatusInternalServerError, msgInternalError)
}

// parseIDParam разбирает {id} из пути. Невалидный UUID означает, что такой записи нет.
func parseIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// decodeValidated читает тело, проверяет его по схеме и только потом раскладывает в dst.
// Возвращает false, если ответ с ошибкой уже отправлен.
func decodeValidated(w http.ResponseWriter, r *http.Request, schema string, dst interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}

	if err := contracts.ValidateRequest(schema, contracts.V1, body); err != nil {
		var fieldErrs *contracts.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			writeFieldErrors(w, "Validation failed", fieldErrs.Errors)
		case errors.Is(err, contracts.ErrMalformedBody):
			WriteJSONError(w, http.StatusBadRequest, msgInvalidBody)
		default:
			contextkeys.LoggerFromContext(r.Context()).Error("Schema lookup failed", err, port.Fields{"schema": schema})
			WriteJSONError(w, http.StatusInternalServerError, msgInternalError)
		}
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		WriteJSONError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// queryParser собирает ошибки по всем параметрам сразу, чтобы клиент увидел их одним ответом
type queryParser struct {
	values url.Values
	errs   []contracts.FieldError
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values}
}

func (p *queryParser) fail(name, message string) {
	p.errs = append(p.errs, contracts.FieldError{Field: name, Message: message})
}

func (p *queryParser) raw(name string) (string, bool) {
	v := strings.TrimSpace(p.values.Get(name))
	return v, v != ""
}

// String возвращает значение как есть, без обрезки пробелов: поисковая подстрока значима целиком
func (p *queryParser) String(name string) string {
	return p.values.Get(name)
}

func (p *queryParser) UUID(name string) *uuid.UUID {
	v, ok := p.raw(name)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		p.fail(name, "must be a valid UUID")
		return nil
	}
	return &id
}

func (p *queryParser) Int(name string, min int) *int {
	v, ok := p.raw(name)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		p.fail(name, "must be a 32-bit integer")
		return nil
	}
	n := int(parsed)
	if n < min {
		p.fail(name, fmt.Sprintf("must be greater than or equal to %d", min))
		return nil
	}
	return &n
}

func (p *queryParser) Float(name string) *float64 {
	v, ok := p.raw(name)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		p.fail(name, "must be a finite number")
		return nil
	}
	return &f
}

func (p *queryParser) Bool(name string) *bool {
	v, ok := p.raw(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(name, "must be true or false")
		return nil
	}
	return &b
}

// parseEnum разбирает значение через parse; пустая строка означает "не задано"
func parseEnum[T ~string](p *queryParser, name string, parse func(string) (T, error)) T {
	v, ok := p.raw(name)
	if !ok {
		return ""
	}
	parsed, err := parse(v)
	if err != nil {
		p.fail(name, err.Error())
		return ""
	}
	return parsed
}

// Err возвращает true и отправляет 400, если какой-то параметр не разобрался
func (p *queryParser) Err(w http.ResponseWriter) bool {
	if len(p.errs) == 0 {
		return false
	}
	writeFieldErrors(w, msgInvalidQuery, p.errs)
	return true
}
