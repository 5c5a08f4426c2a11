package rest

import (
	"encoding/json"
	"net/http"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RealtorHandlers struct {
	createUC usecases_port.CreateRealtorUseCasePort
	updateUC usecases_port.UpdateRealtorUseCasePort
	deleteUC usecases_port.DeleteRealtorUseCasePort
	getUC    usecases_port.GetRealtorUseCasePort
	listUC   usecases_port.ListRealtorsUseCasePort
	searchUC usecases_port.SearchRealtorsUseCasePort
}

func NewRealtorHandlers(
	createUC usecases_port.CreateRealtorUseCasePort,
	updateUC usecases_port.UpdateRealtorUseCasePort,
	deleteUC usecases_port.DeleteRealtorUseCasePort,
	getUC usecases_port.GetRealtorUseCasePort,
	listUC usecases_port.ListRealtorsUseCasePort,
	searchUC usecases_port.SearchRealtorsUseCasePort) *RealtorHandlers {
	return &RealtorHandlers{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		searchUC: searchUC,
	}
}

// CreateRealtor обрабатывает POST /api/v1/realtors
func (h *RealtorHandlers) CreateRealtor(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req RealtorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.createUC.Execute(r.Context(), req.toDomain(uuid.Nil))
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toRealtorResponse(*created))
}

// UpdateRealtor обрабатывает PUT /api/v1/realtors/{realtorID}
func (h *RealtorHandlers) UpdateRealtor(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	realtorID, err := uuid.Parse(chi.URLParam(r, "realtorID"))
	if err != nil {
		logger.Warn("Invalid realtor ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid realtor ID format")
		return
	}

	var req RealtorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), req.toDomain(realtorID))
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toRealtorResponse(*updated))
}

// DeleteRealtor обрабатывает DELETE /api/v1/realtors/{realtorID}
func (h *RealtorHandlers) DeleteRealtor(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	realtorID, err := uuid.Parse(chi.URLParam(r, "realtorID"))
	if err != nil {
		logger.Warn("Invalid realtor ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid realtor ID format")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), realtorID); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetRealtor обрабатывает GET /api/v1/realtors/{realtorID}
func (h *RealtorHandlers) GetRealtor(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	realtorID, err := uuid.Parse(chi.URLParam(r, "realtorID"))
	if err != nil {
		logger.Warn("Invalid realtor ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid realtor ID format")
		return
	}

	realtor, err := h.getUC.Execute(r.Context(), realtorID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toRealtorResponse(*realtor))
}

// ListRealtors обрабатывает GET /api/v1/realtors
func (h *RealtorHandlers) ListRealtors(w http.ResponseWriter, r *http.Request) {
	limit, err := GetLimitOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid limit parameter")
		return
	}
	offset, err := GetOffsetOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid offset parameter")
		return
	}

	realtors, err := h.listUC.Execute(r.Context(), *limit, *offset)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toRealtorResponses(realtors))
}

// SearchRealtors обрабатывает GET /api/v1/realtors/search?query=...
func (h *RealtorHandlers) SearchRealtors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	realtors, err := h.searchUC.Execute(r.Context(), query)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toRealtorResponses(realtors))
}
