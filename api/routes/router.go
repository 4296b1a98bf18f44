package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bloomandblossom/florist-backend/api/controllers"
	"github.com/bloomandblossom/florist-backend/api/middleware"
	authsvc "github.com/bloomandblossom/florist-backend/internal/auth"
	"github.com/bloomandblossom/florist-backend/internal/catalog"
	"github.com/bloomandblossom/florist-backend/internal/dashboard"
	ordersvc "github.com/bloomandblossom/florist-backend/internal/orders"
	"github.com/bloomandblossom/florist-backend/internal/storeprofile"
	"github.com/bloomandblossom/florist-backend/pkg/config"
	"github.com/bloomandblossom/florist-backend/pkg/db"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
	"github.com/bloomandblossom/florist-backend/pkg/redis"
	"github.com/bloomandblossom/florist-backend/pkg/storage/local"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          *db.Client
	Redis       *redis.Client
	Registry    *prometheus.Registry
	AuthService authsvc.Service
	Catalog     catalog.Service
	Orders      ordersvc.Service
	Store       storeprofile.Service
	Dashboard   dashboard.Service
	Uploads     *local.Client
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(nil),
	)

	loginPolicy := middleware.NewRateLimitPolicy(
		"login",
		cfg.RateLimit.LoginWindow,
		cfg.RateLimit.LoginIPLimit,
		cfg.RateLimit.LoginUsernameLimit,
	)
	orderPolicy := middleware.NewRateLimitPolicy(
		"orders",
		cfg.RateLimit.OrderWindow,
		cfg.RateLimit.OrderIPLimit,
		0,
	)

	var limiter redis.RateLimiter
	if d.Redis != nil {
		limiter = d.Redis
	}

	// Typed-nil clients must not reach the readiness checks.
	var dbPing, cachePing interface{ Ping(ctx context.Context) error }
	if d.DB != nil {
		dbPing = d.DB
	}
	if d.Redis != nil {
		cachePing = d.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbPing, cachePing, logg))
	})

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	if d.Uploads != nil {
		r.Method(http.MethodGet, "/uploads/*",
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.Uploads.Dir()))))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimit(loginPolicy, limiter, logg)).Post("/login", controllers.Login(d.AuthService, logg))
			r.Post("/logout", controllers.Logout(logg))
			r.With(middleware.Auth(cfg.JWT, logg)).Get("/verify", controllers.Verify(logg))
		})

		// Public storefront. OptionalAuth lets an admin token widen listings
		// to unavailable plants and inactive categories.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(cfg.JWT, logg))
			r.Get("/plants", controllers.ListPlants(d.Catalog, logg))
			r.Get("/plants/{id}", controllers.GetPlant(d.Catalog, logg))
			r.Get("/categories", controllers.ListCategories(d.Catalog, logg))
		})

		r.Get("/store", controllers.GetStore(d.Store, logg))

		r.Route("/orders", func(r chi.Router) {
			r.With(middleware.RateLimit(orderPolicy, limiter, logg)).Post("/", controllers.CreateOrder(d.Orders, logg))
			r.Get("/track/{orderNumber}", controllers.TrackOrder(d.Orders, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Use(middleware.RequireRole("admin", logg))

			r.Route("/plants", func(r chi.Router) {
				r.Post("/", controllers.AdminCreatePlant(d.Catalog, logg))
				r.Put("/{id}", controllers.AdminUpdatePlant(d.Catalog, logg))
				r.Delete("/{id}", controllers.AdminDeletePlant(d.Catalog, logg))
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", controllers.AdminCreateCategory(d.Catalog, logg))
				r.Put("/{id}", controllers.AdminUpdateCategory(d.Catalog, logg))
				r.Delete("/{id}", controllers.AdminDeleteCategory(d.Catalog, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminListOrders(d.Orders, logg))
				r.Get("/{id}", controllers.AdminGetOrder(d.Orders, logg))
				r.Put("/{id}/status", controllers.AdminUpdateOrderStatus(d.Orders, logg))
			})

			r.Put("/store", controllers.AdminUpdateStore(d.Store, logg))

			r.Route("/uploads", func(r chi.Router) {
				r.Post("/", controllers.AdminUpload(d.Uploads, logg))
				r.Delete("/{filename}", controllers.AdminDeleteUpload(d.Uploads, logg))
			})

			r.Get("/dashboard/stats", controllers.AdminDashboardStats(d.Dashboard, logg))
		})
	})

	return r
}
