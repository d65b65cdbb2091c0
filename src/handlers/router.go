package handlers

import (
	"database/sql"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/username/fintrack/src/config"
	"github.com/username/fintrack/src/processors"
	"github.com/username/fintrack/src/security"
	"github.com/username/fintrack/src/services"
	"github.com/username/fintrack/src/web"
)

// NewRouter wires services, handlers and middleware around db.
func NewRouter(db *sql.DB, cfg *config.AppConfig, templates *template.Template) http.Handler {
	authService := security.NewAuthService(cfg.JWTSecret, cfg.AccessTokenExpiry)

	stockProcessor := processors.NewStockProcessor()
	stockService := services.NewStockService(db, stockProcessor)
	bondService := services.NewBondService(db, processors.NewBondProcessor())
	cashflowService := services.NewCashflowService(db, processors.NewCashflowProcessor())
	portfolioService := services.NewPortfolioService(db, stockService, bondService, cashflowService,
		processors.NewPortfolioProcessor(stockProcessor), processors.NewAlertProcessor(stockProcessor))

	stockHandler := NewStockHandler(stockService)
	bondHandler := NewBondHandler(bondService)
	cashflowHandler := NewCashflowHandler(cashflowService)
	portfolioHandler := NewPortfolioHandler(portfolioService)
	userHandler := NewUserHandler(db, authService)
	healthHandler := NewHealthHandler(db)
	authConfig := AuthConfig{Enforced: cfg.AuthEnforced, DefaultUserID: cfg.DefaultUserID}
	dashboardHandler := NewDashboardHandler(db, templates, authService, authConfig, cfg.DisplayCurrency,
		stockService, bondService, cashflowService, portfolioService)

	auth := AuthMiddleware(authService, authConfig)
	limiter := NewIPRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	r := chi.NewRouter()
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.CleanPath)
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(Recoverer)
	r.Use(SecurityHeaders)
	r.Use(CORS(cfg.AllowedOrigins))
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Route("/api", func(api chi.Router) {
		api.Use(limiter.Middleware)
		api.Use(BodyLimit(cfg.MaxBodyBytes))

		api.Get("/health", healthHandler.HandleHealth)

		api.Route("/auth", func(ar chi.Router) {
			userHandler.PublicRoutes(ar)
			ar.Group(func(pr chi.Router) {
				pr.Use(auth)
				userHandler.ProtectedRoutes(pr)
			})
		})

		api.Group(func(pr chi.Router) {
			pr.Use(auth)
			pr.Mount("/stocks", stockHandler.Routes())
			pr.Mount("/bonds", bondHandler.Routes())
			pr.Mount("/cashflow", cashflowHandler.Routes())
			pr.Mount("/portfolio", portfolioHandler.Routes())
		})
	})

	r.Handle("/static/*", http.StripPrefix("/static/", web.StaticHandler()))
	r.Get("/", dashboardHandler.HandleDashboard)

	return r
}
