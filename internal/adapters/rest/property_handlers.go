package rest

import (
	"encoding/json"
	"net/http"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	core_port "brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PropertyHandlers struct {
	createUC          usecases_port.CreatePropertyUseCasePort
	updateUC          usecases_port.UpdatePropertyUseCasePort
	deleteUC          usecases_port.DeletePropertyUseCasePort
	getUC             usecases_port.GetPropertyUseCasePort
	listUC            usecases_port.ListPropertiesUseCasePort
	searchByAddressUC usecases_port.SearchPropertiesByAddressUseCasePort
	searchByPolygonUC usecases_port.SearchPropertiesByPolygonUseCasePort
}

func NewPropertyHandlers(
	createUC usecases_port.CreatePropertyUseCasePort,
	updateUC usecases_port.UpdatePropertyUseCasePort,
	deleteUC usecases_port.DeletePropertyUseCasePort,
	getUC usecases_port.GetPropertyUseCasePort,
	listUC usecases_port.ListPropertiesUseCasePort,
	searchByAddressUC usecases_port.SearchPropertiesByAddressUseCasePort,
	searchByPolygonUC usecases_port.SearchPropertiesByPolygonUseCasePort) *PropertyHandlers {
	return &PropertyHandlers{
		createUC:          createUC,
		updateUC:          updateUC,
		deleteUC:          deleteUC,
		getUC:             getUC,
		listUC:            listUC,
		searchByAddressUC: searchByAddressUC,
		searchByPolygonUC: searchByPolygonUC,
	}
}

// CreateProperty обрабатывает POST /api/v1/properties
func (h *PropertyHandlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", core_port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, duplicate, err := h.createUC.Execute(r.Context(), req.toDomain(uuid.Nil))
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, CreatedPropertyResponse{
		Property:          toPropertyResponse(*created),
		ProbableDuplicate: duplicate,
	})
}

// UpdateProperty обрабатывает PUT /api/v1/properties/{propertyID}
func (h *PropertyHandlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		logger.Warn("Invalid property ID format", core_port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), req.toDomain(propertyID))
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*updated))
}

// DeleteProperty обрабатывает DELETE /api/v1/properties/{propertyID}
func (h *PropertyHandlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		logger.Warn("Invalid property ID format", core_port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), propertyID); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetProperty обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertyHandlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		logger.Warn("Invalid property ID format", core_port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	property, err := h.getUC.Execute(r.Context(), propertyID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

// ListProperties обрабатывает GET /api/v1/properties
func (h *PropertyHandlers) ListProperties(w http.ResponseWriter, r *http.Request) {
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

	query := r.URL.Query()
	filters := core_port.PropertyFilters{
		City:         query.Get("city"),
		Street:       query.Get("street"),
		PropertyType: domain.PropertyType(query.Get("type")),
	}

	properties, err := h.listUC.Execute(r.Context(), filters, *limit, *offset)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

// SearchPropertiesByAddress обрабатывает GET /api/v1/properties/search/address?query=...
func (h *PropertyHandlers) SearchPropertiesByAddress(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	properties, err := h.searchByAddressUC.Execute(r.Context(), query)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

// SearchPropertiesByPolygon обрабатывает GET /api/v1/properties/search/polygon?point=lat,lon&point=...
func (h *PropertyHandlers) SearchPropertiesByPolygon(w http.ResponseWriter, r *http.Request) {
	points := r.URL.Query()["point"]

	properties, err := h.searchByPolygonUC.Execute(r.Context(), points)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}
