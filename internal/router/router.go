package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/checklist"
	"github.com/alhambra-events/api/internal/config"
	"github.com/alhambra-events/api/internal/conflict"
	"github.com/alhambra-events/api/internal/handler"
	"github.com/alhambra-events/api/internal/history"
	"github.com/alhambra-events/api/internal/pricing"
	"github.com/alhambra-events/api/internal/procure"
	"github.com/alhambra-events/api/internal/sharelink"
	"github.com/alhambra-events/api/internal/store"
	"github.com/alhambra-events/api/internal/ws"
)

// New creates a Chi router with all application routes wired up.
func New(cfg *config.Config, pool *pgxpool.Pool, cat *catalog.Catalog, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	events := store.New(pool)
	engine := pricing.NewEngine(cat)
	checklists := checklist.NewGenerator(cat)
	conflicts := conflict.DefaultChecker(cat)
	differ := history.NewDiffer(cfg.ChangeActor)
	aggregator := procure.NewAggregator(cat)
	links := sharelink.NewIssuer(cfg.ShareLinkSecret, cfg.ShareLinkBaseURL)

	// WebSocket route for department screens
	r.Get("/ws/departments/{dept}", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	})

	catalogHandler := handler.NewCatalogHandler(cat)
	r.Route("/catalog", catalogHandler.RegisterRoutes)

	eventsHandler := handler.NewEventsHandler(events, differ, hub, links)
	r.Route("/events", eventsHandler.RegisterRoutes)

	quotesHandler := handler.NewQuotesHandler(events, engine, checklists, conflicts, links)
	r.Route("/quotes", quotesHandler.RegisterRoutes)

	reportsHandler := handler.NewReportsHandler(events, engine)
	r.Route("/reports", reportsHandler.RegisterRoutes)

	kitchenHandler := handler.NewKitchenHandler(events, cat, aggregator)
	r.Route("/kitchen", kitchenHandler.RegisterRoutes)

	return r
}
