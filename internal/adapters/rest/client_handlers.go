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

type ClientHandlers struct {
	createUC usecases_port.CreateClientUseCasePort
	updateUC usecases_port.UpdateClientUseCasePort
	deleteUC usecases_port.DeleteClientUseCasePort
	getUC    usecases_port.GetClientUseCasePort
	listUC   usecases_port.ListClientsUseCasePort
	searchUC usecases_port.SearchClientsUseCasePort
}

func NewClientHandlers(
	createUC usecases_port.CreateClientUseCasePort,
	updateUC usecases_port.UpdateClientUseCasePort,
	deleteUC usecases_port.DeleteClientUseCasePort,
	getUC usecases_port.GetClientUseCasePort,
	listUC usecases_port.ListClientsUseCasePort,
	searchUC usecases_port.SearchClientsUseCasePort) *ClientHandlers {
	return &ClientHandlers{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		searchUC: searchUC,
	}
}

// CreateClient обрабатывает POST /api/v1/clients
func (h *ClientHandlers) CreateClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req ClientRequest
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

	RespondWithJSON(w, http.StatusCreated, toClientResponse(*created))
}

// UpdateClient обрабатывает PUT /api/v1/clients/{clientID}
func (h *ClientHandlers) UpdateClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		logger.Warn("Invalid client ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), req.toDomain(clientID))
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toClientResponse(*updated))
}

// DeleteClient обрабатывает DELETE /api/v1/clients/{clientID}
func (h *ClientHandlers) DeleteClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		logger.Warn("Invalid client ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), clientID); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetClient обрабатывает GET /api/v1/clients/{clientID}
func (h *ClientHandlers) GetClient(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		logger.Warn("Invalid client ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	client, err := h.getUC.Execute(r.Context(), clientID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toClientResponse(*client))
}

// ListClients обрабатывает GET /api/v1/clients
func (h *ClientHandlers) ListClients(w http.ResponseWriter, r *http.Request) {
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

	clients, err := h.listUC.Execute(r.Context(), *limit, *offset)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toClientResponses(clients))
}

// SearchClients обрабатывает GET /api/v1/clients/search?query=...
func (h *ClientHandlers) SearchClients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	clients, err := h.searchUC.Execute(r.Context(), query)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toClientResponses(clients))
}
