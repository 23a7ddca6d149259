package main

import (
	"net/http"

	"github.com/ArushKhare/LockedInterview/internal/config"
	"github.com/ArushKhare/LockedInterview/internal/middleware"
	"github.com/ArushKhare/LockedInterview/internal/questions"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func newRouter(cfg *config.Config, questionHandler *questions.Handler, log *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))
	r.MethodNotAllowedHandler = http.HandlerFunc(questions.MethodNotAllowed)

	questionHandler.RegisterRoutes(r)

	// Frontend and any other static files
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir))).Methods(http.MethodGet, http.MethodHead)

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(r)
}
