package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quickcart/quickcart-backend/api/controllers"
	"github.com/quickcart/quickcart-backend/api/middleware"
	addresssvc "github.com/quickcart/quickcart-backend/internal/address"
	cartsvc "github.com/quickcart/quickcart-backend/internal/cart"
	catsvc "github.com/quickcart/quickcart-backend/internal/categories"
	productsvc "github.com/quickcart/quickcart-backend/internal/products"
	usersvc "github.com/quickcart/quickcart-backend/internal/users"
	"github.com/quickcart/quickcart-backend/pkg/auth/session"
	"github.com/quickcart/quickcart-backend/pkg/config"
	"github.com/quickcart/quickcart-backend/pkg/db"
	"github.com/quickcart/quickcart-backend/pkg/logger"
	"github.com/quickcart/quickcart-backend/pkg/redis"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           db.Pinger
	Redis        *redis.Client
	Revocations  session.RevocationChecker
	UserService  usersvc.Service
	CartService  cartsvc.Service
	CatService   catsvc.Service
	ProductSvc   productsvc.Service
	AddressSvc   addresssvc.Service
	ExtraOrigins []string
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(deps.ExtraOrigins...),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	// public catalog reads
	r.Get("/api/product/list", controllers.ListProducts(deps.ProductSvc, logg))
	r.Get("/api/category/list/sub", controllers.ListCategories(deps.CatService, catsvc.NamespaceSub, logg))
	r.Get("/api/category/list/parent", controllers.ListCategories(deps.CatService, catsvc.NamespaceParent, logg))

	// identity-provider webhook, guarded by shared secret and rate limit
	r.With(middleware.SyncGuard(cfg.SyncRateLimit, deps.Redis, logg)).
		Post("/api/user/sync", controllers.SyncUser(deps.UserService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Revocations, logg))

		r.Post("/api/cart/update", controllers.UpdateCart(deps.CartService, logg))
		r.Get("/api/cart/get", controllers.GetCart(deps.CartService, logg))

		r.Get("/api/user/data", controllers.UserData(deps.UserService, logg))
		r.Post("/api/user/add-address", controllers.AddAddress(deps.AddressSvc, logg))
		r.Get("/api/user/get-address", controllers.GetAddresses(deps.AddressSvc, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSeller(logg))

			r.Post("/api/category/add/sub", controllers.AddCategory(deps.CatService, catsvc.NamespaceSub, logg))
			r.Post("/api/category/add/parent", controllers.AddCategory(deps.CatService, catsvc.NamespaceParent, logg))
			r.Put("/api/category/update/sub/{id}", controllers.UpdateCategory(deps.CatService, logg))
			r.Delete("/api/category/delete/sub/{id}", controllers.DeleteCategory(deps.CatService, logg))

			r.Post("/api/product/add", controllers.AddProduct(deps.ProductSvc, logg))
			r.Get("/api/product/seller-list", controllers.SellerProducts(deps.ProductSvc, logg))
		})
	})

	return r
}
