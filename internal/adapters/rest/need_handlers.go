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

type NeedHandlers struct {
	createUC         usecases_port.CreateNeedUseCasePort
	updateUC         usecases_port.UpdateNeedUseCasePort
	deleteUC         usecases_port.DeleteNeedUseCasePort
	getUC            usecases_port.GetNeedUseCasePort
	listUC           usecases_port.ListNeedsUseCasePort
	matchingOffersUC usecases_port.MatchingOffersForNeedUseCasePort
}

func NewNeedHandlers(
	createUC usecases_port.CreateNeedUseCasePort,
	updateUC usecases_port.UpdateNeedUseCasePort,
	deleteUC usecases_port.DeleteNeedUseCasePort,
	getUC usecases_port.GetNeedUseCasePort,
	listUC usecases_port.ListNeedsUseCasePort,
	matchingOffersUC usecases_port.MatchingOffersForNeedUseCasePort) *NeedHandlers {
	return &NeedHandlers{
		createUC:         createUC,
		updateUC:         updateUC,
		deleteUC:         deleteUC,
		getUC:            getUC,
		listUC:           listUC,
		matchingOffersUC: matchingOffersUC,
	}
}

// CreateNeed обрабатывает POST /api/v1/needs
func (h *NeedHandlers) CreateNeed(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req NeedRequest
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

	RespondWithJSON(w, http.StatusCreated, toNeedResponse(*created))
}

// UpdateNeed обрабатывает PUT /api/v1/needs/{needID}
func (h *NeedHandlers) UpdateNeed(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	needID, err := uuid.Parse(chi.URLParam(r, "needID"))
	if err != nil {
		logger.Warn("Invalid need ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid need ID format")
		return
	}

	var req NeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), req.toDomain(needID))
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toNeedResponse(*updated))
}

// DeleteNeed обрабатывает DELETE /api/v1/needs/{needID}
func (h *NeedHandlers) DeleteNeed(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	needID, err := uuid.Parse(chi.URLParam(r, "needID"))
	if err != nil {
		logger.Warn("Invalid need ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid need ID format")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), needID); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetNeed обрабатывает GET /api/v1/needs/{needID}
func (h *NeedHandlers) GetNeed(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	needID, err := uuid.Parse(chi.URLParam(r, "needID"))
	if err != nil {
		logger.Warn("Invalid need ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid need ID format")
		return
	}

	need, err := h.getUC.Execute(r.Context(), needID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toNeedDetailsResponse(*need))
}

// ListNeeds обрабатывает GET /api/v1/needs
func (h *NeedHandlers) ListNeeds(w http.ResponseWriter, r *http.Request) {
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

	needs, err := h.listUC.Execute(r.Context(), *limit, *offset)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toNeedDetailsResponses(needs))
}

// MatchingOffers обрабатывает GET /api/v1/needs/{needID}/matching-offers
func (h *NeedHandlers) MatchingOffers(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	needID, err := uuid.Parse(chi.URLParam(r, "needID"))
	if err != nil {
		logger.Warn("Invalid need ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid need ID format")
		return
	}

	offers, err := h.matchingOffersUC.Execute(r.Context(), needID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toOfferDetailsResponses(offers))
}
