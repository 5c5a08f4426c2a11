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

type OfferHandlers struct {
	createUC        usecases_port.CreateOfferUseCasePort
	updateUC        usecases_port.UpdateOfferUseCasePort
	deleteUC        usecases_port.DeleteOfferUseCasePort
	getUC           usecases_port.GetOfferUseCasePort
	listUC          usecases_port.ListOffersUseCasePort
	matchingNeedsUC usecases_port.MatchingNeedsForOfferUseCasePort
}

func NewOfferHandlers(
	createUC usecases_port.CreateOfferUseCasePort,
	updateUC usecases_port.UpdateOfferUseCasePort,
	deleteUC usecases_port.DeleteOfferUseCasePort,
	getUC usecases_port.GetOfferUseCasePort,
	listUC usecases_port.ListOffersUseCasePort,
	matchingNeedsUC usecases_port.MatchingNeedsForOfferUseCasePort) *OfferHandlers {
	return &OfferHandlers{
		createUC:        createUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		getUC:           getUC,
		listUC:          listUC,
		matchingNeedsUC: matchingNeedsUC,
	}
}

// CreateOffer обрабатывает POST /api/v1/offers
func (h *OfferHandlers) CreateOffer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req OfferRequest
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

	RespondWithJSON(w, http.StatusCreated, toOfferResponse(*created))
}

// UpdateOffer обрабатывает PUT /api/v1/offers/{offerID}
func (h *OfferHandlers) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	offerID, err := uuid.Parse(chi.URLParam(r, "offerID"))
	if err != nil {
		logger.Warn("Invalid offer ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid offer ID format")
		return
	}

	var req OfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), req.toDomain(offerID))
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toOfferResponse(*updated))
}

// DeleteOffer обрабатывает DELETE /api/v1/offers/{offerID}
func (h *OfferHandlers) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	offerID, err := uuid.Parse(chi.URLParam(r, "offerID"))
	if err != nil {
		logger.Warn("Invalid offer ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid offer ID format")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), offerID); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetOffer обрабатывает GET /api/v1/offers/{offerID}
func (h *OfferHandlers) GetOffer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	offerID, err := uuid.Parse(chi.URLParam(r, "offerID"))
	if err != nil {
		logger.Warn("Invalid offer ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid offer ID format")
		return
	}

	offer, err := h.getUC.Execute(r.Context(), offerID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toOfferDetailsResponse(*offer))
}

// ListOffers обрабатывает GET /api/v1/offers
func (h *OfferHandlers) ListOffers(w http.ResponseWriter, r *http.Request) {
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

	offers, err := h.listUC.Execute(r.Context(), *limit, *offset)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toOfferDetailsResponses(offers))
}

// MatchingNeeds обрабатывает GET /api/v1/offers/{offerID}/matching-needs
func (h *OfferHandlers) MatchingNeeds(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	offerID, err := uuid.Parse(chi.URLParam(r, "offerID"))
	if err != nil {
		logger.Warn("Invalid offer ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid offer ID format")
		return
	}

	needs, err := h.matchingNeedsUC.Execute(r.Context(), offerID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toNeedDetailsResponses(needs))
}
