package api

import (
	"github.com/garnizeh/careboard/internal/config"
	"github.com/garnizeh/careboard/internal/db"
	"github.com/garnizeh/careboard/internal/repository/sqlite"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	patientsHandler := NewPatientsHandler(repo, repo, repo)
	inboxHandler := NewInboxHandler(repo, repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/doctors/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/v1/doctors/login", authHandler.Login).Methods("POST")

	// Patient endpoints (patients have no accounts)
	r.HandleFunc("/v1/doctors", patientsHandler.ListDoctors).Methods("GET")
	r.HandleFunc("/v1/queries", patientsHandler.SubmitQuery).Methods("POST")
	r.HandleFunc("/v1/queries", patientsHandler.ListQueries).Methods("GET")

	// Doctor inbox, JWT protected
	inboxV1 := r.PathPrefix("/v1/inbox").Subrouter()
	inboxV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	inboxV1.HandleFunc("", inboxHandler.ListInbox).Methods("GET")
	inboxV1.HandleFunc("/replies", inboxHandler.SendReply).Methods("POST")

	return r
}
