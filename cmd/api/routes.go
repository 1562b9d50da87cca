package main

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"libraryapi/internal/author"
	"libraryapi/internal/book"
	"libraryapi/internal/category"
	"libraryapi/internal/config"
	"libraryapi/internal/httpx"
	"libraryapi/internal/platform/database"
)

// newRouter wires repositories, services and handlers over one executor and
// returns the fully decorated handler.
func newRouter(cfg config.Config, executor *database.Executor, log *zap.Logger) http.Handler {
	authorHandler := author.NewHTTPHandler(author.NewService(author.NewSQLRepo(executor)), log)
	categoryHandler := category.NewHTTPHandler(category.NewService(category.NewSQLRepo(executor)), log)
	bookHandler := book.NewHTTPHandler(book.NewService(book.NewSQLRepo(executor)), log)

	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", index)

	router.HandleFunc("GET /auteurs", authorHandler.List)
	router.HandleFunc("POST /auteurs", authorHandler.Create)
	router.HandleFunc("GET /auteurs/{nom}", authorHandler.GetByName)
	router.HandleFunc("DELETE /auteurs/{nom}", authorHandler.Delete)
	router.HandleFunc("GET /auteurs/{nom}/livres", bookHandler.ListByAuthor)
	router.HandleFunc("POST /auteurs/{nom_auteur}/categories/{nom_categorie}/livres", bookHandler.Create)

	router.HandleFunc("GET /categories", categoryHandler.List)
	router.HandleFunc("POST /categories", categoryHandler.Create)
	router.HandleFunc("GET /categories/{nom}", categoryHandler.GetByName)
	router.HandleFunc("DELETE /categories/{nom}", categoryHandler.Delete)
	router.HandleFunc("GET /categories/{nom_categorie}/livres", bookHandler.ListByCategory)

	router.HandleFunc("GET /livres", bookHandler.List)
	router.HandleFunc("GET /livres/{isbn}", bookHandler.GetByISBN)
	router.HandleFunc("DELETE /livres/{isbn}", bookHandler.Delete)
	router.HandleFunc("GET /livres/{isbn}/auteurs", authorHandler.ListByBook)

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := executor.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.Handler())

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		httpx.MetricsMiddleware,
	)
}

// index handles GET /
func index(w http.ResponseWriter, r *http.Request) {
	httpx.JSONOK(w, []httpx.Links{{Links: []httpx.Link{
		{Href: "/auteurs", Rel: httpx.RelAuteurs},
		{Href: "/livres", Rel: httpx.RelLivres},
		{Href: "/categories", Rel: httpx.RelCategories},
	}}})
}
