package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"brokerage-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	// формируем объект ошибки
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// WriteDomainError переводит доменные ошибки в HTTP-статусы.
// Детали неизвестных ошибок клиенту не раскрываются.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, domain.ErrAlreadyBound):
		WriteJSONError(w, http.StatusConflict, "Record is already bound by a deal")
	case errors.Is(err, domain.ErrHasRelations):
		WriteJSONError(w, http.StatusConflict, "Record is referenced by other records")
	default:
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func GetLimitOrDefault(r *http.Request) (*int, error) {
	limitStr := r.URL.Query().Get("limit")
	limit := 10 // дефолтное значение
	if limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			return nil, err
		}
	}
	return &limit, nil
}

func GetOffsetOrDefault(r *http.Request) (*int, error) {
	offsetStr := r.URL.Query().Get("offset")
	offset := 0
	if offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			return nil, err
		}
	}
	return &offset, nil
}
