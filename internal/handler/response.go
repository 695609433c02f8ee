package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/report-mapping-api/internal/domain"
	"github.com/report-mapping-api/internal/dto"
)

// Коды ошибок в теле ответа
const (
	codeInvalidInput     = "invalid_input"
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeInternal         = "internal"
)

// responder содержит общие для всех хендлеров зависимости и методы ответа
type responder struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	return responder{
		validator: newValidator(),
		logger:    logger,
	}
}

// newValidator регистрирует проверку "mapping_type" для DTO
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("mapping_type", validateMappingType); err != nil {
		panic(fmt.Sprintf("register mapping_type validation: %v", err))
	}
	return v
}

func validateMappingType(fl validator.FieldLevel) bool {
	_, err := domain.ParseMappingType(fl.Field().String())
	return err == nil
}

func (h *responder) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}
	return true
}

func (h *responder) handleServiceError(w http.ResponseWriter, err error) {
	var missing *domain.MissingHeadersError
	switch {
	case errors.As(err, &missing):
		h.respondJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:          "Missing required headers",
			Code:           codeInvalidInput,
			MissingHeaders: missing.Missing,
		})
	case errors.Is(err, domain.ErrReportNotFound):
		h.respondError(w, http.StatusNotFound, "report not found", "")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrMappingNotFound):
		h.respondError(w, http.StatusNotFound, "mapping not found", "")
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		h.respondError(w, http.StatusBadRequest, "invalid input", err.Error())
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *responder) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	resp := dto.ErrorResponse{Error: errMsg, Code: errorCode(status)}
	if details != "" {
		resp.Message = details
	}
	h.respondJSON(w, status, resp)
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return codeInvalidInput
	case http.StatusNotFound:
		return codeNotFound
	case http.StatusMethodNotAllowed:
		return codeMethodNotAllowed
	default:
		return codeInternal
	}
}

// pathParam возвращает декодированный параметр маршрута.
// chi отдаёт сырой сегмент, если в пути есть экранированные символы вроде %2F.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
