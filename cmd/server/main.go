// @title           Quotes API
// @version         1.0
// @description     Multi-user quotes service with cookie sessions, quote CRUD, search and comments.
// @host            localhost:8080
// @schemes         http https
// @BasePath        /
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/VarshiniKilaru09/quotes-project/internal/api"
	"github.com/VarshiniKilaru09/quotes-project/internal/config"
	"github.com/VarshiniKilaru09/quotes-project/internal/database"
	"github.com/VarshiniKilaru09/quotes-project/internal/websocket"

	_ "github.com/VarshiniKilaru09/quotes-project/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Cannot load configuration: %v", err)
	}

	dbpool, err := pgxpool.New(context.Background(), cfg.DB.Source)
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Cannot ping database: %v", err)
	}
	log.Println("Successfully connected to database")

	wsHub := websocket.NewHub()
	go wsHub.Run()

	store := database.NewStore(dbpool, wsHub)
	server := api.NewServer(cfg, store, wsHub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(api.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", server.ServeWsHandler)

	r.Get("/login", server.LoginPageHandler)
	r.Post("/login", server.LoginHandler)
	r.Get("/register", server.RegisterPageHandler)
	r.Post("/register", server.RegisterHandler)
	r.Get("/logout", server.LogoutHandler)

	r.Group(func(r chi.Router) {
		r.Use(server.SessionMiddleware)
		r.Get("/", server.ListQuotesHandler)
		r.Get("/quotes", server.ListQuotesHandler)
		r.Get("/search", server.SearchQuotesHandler)
		r.Get("/add", server.AddQuotePageHandler)
		r.Post("/add", server.AddQuoteHandler)
		r.Get("/edit/{id}", server.EditQuotePageHandler)
		r.Post("/edit/{id}", server.EditQuoteHandler)
		r.Get("/delete/{id}", server.DeleteQuoteHandler)
		r.Get("/add_comment/{quoteId}", server.AddCommentPageHandler)
		r.Post("/add_comment/{quoteId}", server.AddCommentHandler)
		r.Post("/edit_comment/{quoteId}/{commentId}", server.EditCommentHandler)
		r.Post("/delete_comment/{quoteId}/{commentId}", server.DeleteCommentHandler)
		r.Get("/events", server.GetEventsHandler)
	})

	log.Printf("Starting server on %s", cfg.HTTP.Addr)
	if err := http.ListenAndServe(cfg.HTTP.Addr, r); err != nil {
		log.Fatalf("Cannot start server: %v", err)
	}
}
