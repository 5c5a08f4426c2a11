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

type DealHandlers struct {
	createUC      usecases_port.CreateDealUseCasePort
	getUC         usecases_port.GetDealUseCasePort
	listUC        usecases_port.ListDealsUseCasePort
	commissionsUC usecases_port.GetDealCommissionsUseCasePort
}

func NewDealHandlers(
	createUC usecases_port.CreateDealUseCasePort,
	getUC usecases_port.GetDealUseCasePort,
	listUC usecases_port.ListDealsUseCasePort,
	commissionsUC usecases_port.GetDealCommissionsUseCasePort) *DealHandlers {
	return &DealHandlers{
		createUC:      createUC,
		getUC:         getUC,
		listUC:        listUC,
		commissionsUC: commissionsUC,
	}
}

// CreateDeal обрабатывает POST /api/v1/deals
func (h *DealHandlers) CreateDeal(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req DealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deal, err := h.createUC.Execute(r.Context(), req.NeedID, req.OfferID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toDealResponse(*deal))
}

// GetDeal обрабатывает GET /api/v1/deals/{dealID}
func (h *DealHandlers) GetDeal(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	dealID, err := uuid.Parse(chi.URLParam(r, "dealID"))
	if err != nil {
		logger.Warn("Invalid deal ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid deal ID format")
		return
	}

	deal, err := h.getUC.Execute(r.Context(), dealID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toDealDetailsResponse(*deal))
}

// ListDeals обрабатывает GET /api/v1/deals
func (h *DealHandlers) ListDeals(w http.ResponseWriter, r *http.Request) {
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

	deals, err := h.listUC.Execute(r.Context(), *limit, *offset)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toDealDetailsResponses(deals))
}

// GetDealCommissions обрабатывает GET /api/v1/deals/{dealID}/commissions
func (h *DealHandlers) GetDealCommissions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	dealID, err := uuid.Parse(chi.URLParam(r, "dealID"))
	if err != nil {
		logger.Warn("Invalid deal ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid deal ID format")
		return
	}

	breakdown, err := h.commissionsUC.Execute(r.Context(), dealID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toCommissionBreakdownResponse(*breakdown))
}
