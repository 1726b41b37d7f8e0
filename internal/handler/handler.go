package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gamecharge/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// validate is shared by all handlers; validator instances cache struct metadata.
var validate = validator.New()

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service-layer error to an HTTP response.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeGameNotFound,
		model.ErrCodePriceOptionNotFound,
		model.ErrCodeOrderNotFound,
		model.ErrCodeNotifNotFound,
		model.ErrCodeUserNotFound:
		status = http.StatusNotFound
	case model.ErrCodeGameHasOrders, model.ErrCodeUserExists:
		status = http.StatusConflict
	case model.ErrCodeBadCredentials:
		status = http.StatusUnauthorized
	case model.ErrCodeValidation, model.ErrCodeInvalidJSON:
		status = http.StatusBadRequest
	}

	writeError(w, status, domainErr.Code, domainErr.Message, logger)
}

// decodeAndValidate decodes the request body into dst and runs struct
// validation. On failure it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, err.Error(), logger)
		return false
	}
	return true
}

// pathInt parses an integer path parameter. On failure it writes a 400 and
// returns false.
func pathInt(w http.ResponseWriter, r *http.Request, name string, logger zerolog.Logger) (int, bool) {
	value, err := strconv.Atoi(r.PathValue(name))
	if err != nil || value < 1 {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid "+name, logger)
		return 0, false
	}
	return value, true
}
