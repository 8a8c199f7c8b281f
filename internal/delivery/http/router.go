package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"sportsessions/internal/delivery/http/controllers"
	"sportsessions/internal/delivery/http/middleware"
	"sportsessions/internal/domain"
)

// RouterDeps holds everything the router wires together.
type RouterDeps struct {
	Logger         *slog.Logger
	Verifier       domain.TokenVerifier
	Users          domain.UserService
	AllowedOrigins []string

	Sports  *controllers.SportController
	Session *controllers.SessionController
	Player  *controllers.PlayerController
	Reports *controllers.ReportController
}

// NewRouter initializes the HTTP router with all application routes, wrapped in CORS and
// request logging.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(d.Verifier, d.Users, d.Logger)
	admin := func(next http.HandlerFunc) http.HandlerFunc { return auth(middleware.RequireAdmin(next)) }

	// Sports
	mux.HandleFunc("GET /sports", auth(d.Sports.ListSports))
	mux.HandleFunc("POST /sports", admin(d.Sports.CreateSport))
	mux.HandleFunc("DELETE /sports/{sportID}", admin(d.Sports.DeleteSport))

	// Sessions
	mux.HandleFunc("GET /sessions", admin(d.Session.ListSessions))
	mux.HandleFunc("POST /sessions", admin(d.Session.CreateSession))
	mux.HandleFunc("GET /sessions/{sessionID}", auth(d.Session.GetSession))
	mux.HandleFunc("PUT /sessions/{sessionID}", auth(d.Session.EditSession))
	mux.HandleFunc("DELETE /sessions/{sessionID}", auth(d.Session.DeleteSession))

	// Player
	mux.HandleFunc("GET /player/dashboard", auth(d.Player.Dashboard))
	mux.HandleFunc("GET /player/sessions/available", auth(d.Player.AvailableSessions))
	mux.HandleFunc("GET /player/sessions/joined", auth(d.Player.JoinedSessions))
	mux.HandleFunc("POST /player/sessions/{sessionID}/join", auth(d.Player.JoinSession))
	mux.HandleFunc("DELETE /player/sessions/{sessionID}/join", auth(d.Player.LeaveSession))

	// Reports
	mux.HandleFunc("GET /reports/sport-popularity", admin(d.Reports.SportPopularity))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(d.Logger, middleware.CORS(d.AllowedOrigins, mux))
}
