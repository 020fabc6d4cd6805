package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"roomBooker/internal/catalog"
	"roomBooker/internal/config"
	"roomBooker/internal/http-server/handlers/auth/login"
	"roomBooker/internal/http-server/handlers/auth/signup"
	"roomBooker/internal/http-server/handlers/booking/cancelBooking"
	"roomBooker/internal/http-server/handlers/booking/createBooking"
	"roomBooker/internal/http-server/handlers/booking/listBookings"
	"roomBooker/internal/http-server/handlers/booking/updateBooking"
	"roomBooker/internal/http-server/handlers/booking/userBookings"
	"roomBooker/internal/http-server/handlers/room/listRooms"
	"roomBooker/internal/http-server/handlers/room/roomCapacity"
	"roomBooker/internal/http-server/middleware/mwlogger"
	"roomBooker/internal/http-server/middleware/ratelimit"
	"roomBooker/internal/service"
)

const visitorTTL = 10 * time.Minute

func New(log *slog.Logger, cfg *config.Config, svc *service.Service, rooms *catalog.Catalog) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))

	if cfg.HTTPServer.StaticDir != "" {
		fs := http.FileServer(http.Dir(cfg.HTTPServer.StaticDir))
		router.Handle("/static/*", http.StripPrefix("/static/", fs))

		router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/static/index.html", http.StatusFound)
		})
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]bool{"ok": true})
	})

	limiter := ratelimit.NewLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, visitorTTL)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(ratelimit.New(log, limiter))

			r.Post("/signup", signup.New(log, svc))
			r.Post("/login", login.New(log, svc))
		})

		r.Get("/rooms", listRooms.New(log, rooms))
		r.Get("/room-capacity", roomCapacity.New(log, rooms))

		r.Get("/bookings", listBookings.New(log, svc))
		r.Post("/bookings", createBooking.New(log, svc))
		r.Put("/bookings", updateBooking.New(log, svc))
		r.Delete("/bookings", cancelBooking.New(log, svc))

		r.Get("/user-bookings", userBookings.New(log, svc))
	})

	return router
}
