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

type ActHandlers struct {
	createUC usecases_port.CreateActUseCasePort
	updateUC usecases_port.UpdateActUseCasePort
	deleteUC usecases_port.DeleteActUseCasePort
	getUC    usecases_port.GetActUseCasePort
	listUC   usecases_port.ListActsUseCasePort
}

func NewActHandlers(
	createUC usecases_port.CreateActUseCasePort,
	updateUC usecases_port.UpdateActUseCasePort,
	deleteUC usecases_port.DeleteActUseCasePort,
	getUC usecases_port.GetActUseCasePort,
	listUC usecases_port.ListActsUseCasePort) *ActHandlers {
	return &ActHandlers{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
	}
}

// CreateAct обрабатывает POST /api/v1/acts
func (h *ActHandlers) CreateAct(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req ActRequest
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

	RespondWithJSON(w, http.StatusCreated, toActResponse(*created))
}

// UpdateAct обрабатывает PUT /api/v1/acts/{actID}
func (h *ActHandlers) UpdateAct(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	actID, err := uuid.Parse(chi.URLParam(r, "actID"))
	if err != nil {
		logger.Warn("Invalid act ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid act ID format")
		return
	}

	var req ActRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), req.toDomain(actID))
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toActResponse(*updated))
}

// DeleteAct обрабатывает DELETE /api/v1/acts/{actID}
func (h *ActHandlers) DeleteAct(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	actID, err := uuid.Parse(chi.URLParam(r, "actID"))
	if err != nil {
		logger.Warn("Invalid act ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid act ID format")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), actID); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetAct обрабатывает GET /api/v1/acts/{actID}
func (h *ActHandlers) GetAct(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	actID, err := uuid.Parse(chi.URLParam(r, "actID"))
	if err != nil {
		logger.Warn("Invalid act ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid act ID format")
		return
	}

	act, err := h.getUC.Execute(r.Context(), actID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toActResponse(*act))
}

// ListActs обрабатывает GET /api/v1/acts
func (h *ActHandlers) ListActs(w http.ResponseWriter, r *http.Request) {
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

	acts, err := h.listUC.Execute(r.Context(), *limit, *offset)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toActResponses(acts))
}
