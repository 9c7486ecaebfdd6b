package api

import (
	"net/http"
	"time"

	"inkwell/internal/api/handler"
	"inkwell/internal/app/service"
	"inkwell/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(
	authService *service.AuthService,
	bookService *service.BookService,
	chapterService *service.ChapterService,
	sessions repository.SessionRepository,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		authHandler := handler.NewAuthHandler(authService, sessions)
		api.Route("/user", authHandler.RegisterRoutes)

		bookHandler := handler.NewBookHandler(bookService, sessions)
		api.Route("/book", bookHandler.RegisterRoutes)

		chapterHandler := handler.NewChapterHandler(chapterService, sessions)
		api.Route("/chapter", chapterHandler.RegisterRoutes)
	})

	return r
}
