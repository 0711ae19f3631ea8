package rest

import (
	"context"
	"net/http"

	core_port "github.com/ank17jaat/SpaceMate/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	propertyHandlers *PropertyHandler,
	bookingHandlers *BookingHandler,
	authMiddleware *AuthMiddleware,
	allowedOrigins []string,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		// На сколько секунд браузер может кэшировать результат preflight-запроса
		MaxAge: 300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Публичные маршруты каталога
		r.Group(func(r chi.Router) {
			r.Get("/properties", propertyHandlers.FindProperties)
			r.Get("/properties/{propertyID}", propertyHandlers.GetPropertyDetails)
			r.Get("/amenities", propertyHandlers.GetAmenities)
		})

		// Приватные маршруты (для всех авторизованных)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/properties", propertyHandlers.CreateProperty)
			r.Delete("/properties/{propertyID}", propertyHandlers.DeleteProperty)
			r.Get("/my-properties", propertyHandlers.GetMyProperties)

			r.Get("/bookings", bookingHandlers.GetUserBookings)
			r.Post("/bookings", bookingHandlers.CreateBooking)
			r.Delete("/bookings/{bookingID}", bookingHandlers.CancelBooking)
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

// Handler возвращает корневой роутер (используется в httptest)
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
