package rest

import (
	"context"
	"net/http"

	core_port "brokerage-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	corsAllowedOrigins []string,
	clientHandlers *ClientHandlers,
	realtorHandlers *RealtorHandlers,
	propertyHandlers *PropertyHandlers,
	offerHandlers *OfferHandlers,
	needHandlers *NeedHandlers,
	dealHandlers *DealHandlers,
	actHandlers *ActHandlers,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300, // 5 минут
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Post("/", clientHandlers.CreateClient)
			r.Get("/", clientHandlers.ListClients)
			r.Get("/search", clientHandlers.SearchClients)
			r.Get("/{clientID}", clientHandlers.GetClient)
			r.Put("/{clientID}", clientHandlers.UpdateClient)
			r.Delete("/{clientID}", clientHandlers.DeleteClient)
		})

		r.Route("/realtors", func(r chi.Router) {
			r.Post("/", realtorHandlers.CreateRealtor)
			r.Get("/", realtorHandlers.ListRealtors)
			r.Get("/search", realtorHandlers.SearchRealtors)
			r.Get("/{realtorID}", realtorHandlers.GetRealtor)
			r.Put("/{realtorID}", realtorHandlers.UpdateRealtor)
			r.Delete("/{realtorID}", realtorHandlers.DeleteRealtor)
		})

		r.Route("/properties", func(r chi.Router) {
			r.Post("/", propertyHandlers.CreateProperty)
			r.Get("/", propertyHandlers.ListProperties)
			r.Get("/search/address", propertyHandlers.SearchPropertiesByAddress)
			r.Get("/search/polygon", propertyHandlers.SearchPropertiesByPolygon)
			r.Get("/{propertyID}", propertyHandlers.GetProperty)
			r.Put("/{propertyID}", propertyHandlers.UpdateProperty)
			r.Delete("/{propertyID}", propertyHandlers.DeleteProperty)
		})

		r.Route("/offers", func(r chi.Router) {
			r.Post("/", offerHandlers.CreateOffer)
			r.Get("/", offerHandlers.ListOffers)
			r.Get("/{offerID}", offerHandlers.GetOffer)
			r.Put("/{offerID}", offerHandlers.UpdateOffer)
			r.Delete("/{offerID}", offerHandlers.DeleteOffer)
			r.Get("/{offerID}/matching-needs", offerHandlers.MatchingNeeds)
		})

		r.Route("/needs", func(r chi.Router) {
			r.Post("/", needHandlers.CreateNeed)
			r.Get("/", needHandlers.ListNeeds)
			r.Get("/{needID}", needHandlers.GetNeed)
			r.Put("/{needID}", needHandlers.UpdateNeed)
			r.Delete("/{needID}", needHandlers.DeleteNeed)
			r.Get("/{needID}/matching-offers", needHandlers.MatchingOffers)
		})

		r.Route("/deals", func(r chi.Router) {
			r.Post("/", dealHandlers.CreateDeal)
			r.Get("/", dealHandlers.ListDeals)
			r.Get("/{dealID}", dealHandlers.GetDeal)
			r.Get("/{dealID}/commissions", dealHandlers.GetDealCommissions)
		})

		r.Route("/acts", func(r chi.Router) {
			r.Post("/", actHandlers.CreateAct)
			r.Get("/", actHandlers.ListActs)
			r.Get("/{actID}", actHandlers.GetAct)
			r.Put("/{actID}", actHandlers.UpdateAct)
			r.Delete("/{actID}", actHandlers.DeleteAct)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
