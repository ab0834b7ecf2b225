package api

import (
	"net/http"
	"time"

	"helpdesk/internal/api/handler"
	"helpdesk/internal/api/middleware"
	"helpdesk/internal/app/service"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter wires the resource handlers onto the legacy route table. Paths
// are kept byte-for-byte as existing clients know them, mixed case and all.
func NewRouter(
	userService *service.UserService,
	ticketService *service.TicketService,
	commentService *service.CommentService,
	banService *service.BanService,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	userHandler := handler.NewUserHandler(userService, logger)
	r.Route("/User", userHandler.RegisterRoutes)

	ticketHandler := handler.NewTicketHandler(ticketService, logger)
	ticketHandler.RegisterRoutes(r)

	commentHandler := handler.NewCommentHandler(commentService, logger)
	commentHandler.RegisterRoutes(r)

	banHandler := handler.NewBanHandler(banService, logger)
	banHandler.RegisterRoutes(r)

	return r
}
