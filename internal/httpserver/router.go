package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"storefront/internal/connectivity"
	"storefront/internal/domain"
	ordersvc "storefront/internal/service/order"
	cartstore "storefront/internal/store/cart"
	"storefront/internal/store/wishlist"
)

// AuthService drives signup/signin and session resolution.
type AuthService interface {
	SignUp(ctx context.Context, email, password, displayName string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*domain.User, string, error)
	SignOut(ctx context.Context, token string)
	Anonymous(ctx context.Context) (string, error)
	Session(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, token, displayName string) (*domain.User, error)
	AccessTTLSeconds() int
}

// OrderService places orders and lists order history.
type OrderService interface {
	Create(ctx context.Context, in ordersvc.CreateInput) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

// Catalog serves the read-only product catalog.
type Catalog interface {
	ListProducts(ctx context.Context) []domain.Product
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	ListCategories(ctx context.Context) []string
	ListProductsByCategory(ctx context.Context, category string) []domain.Product
}

// Deps carries the services the router depends on.
type Deps struct {
	AuthSvc   AuthService
	OrderSvc  OrderService
	Catalog   Catalog
	Carts     *cartstore.Manager
	Wishlists *wishlist.Manager
	Network   *connectivity.Observer
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, rdb *redis.Client, deps Deps) (*gin.Engine, error) {
	if deps.AuthSvc == nil {
		return nil, errors.New("httpserver: auth service is required")
	}
	if deps.OrderSvc == nil {
		return nil, errors.New("httpserver: order service is required")
	}
	if deps.Catalog == nil {
		return nil, errors.New("httpserver: catalog is required")
	}
	if deps.Carts == nil || deps.Wishlists == nil {
		return nil, errors.New("httpserver: cart and wishlist managers are required")
	}
	if deps.Network == nil {
		return nil, errors.New("httpserver: network observer is required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.Use(sessionMiddleware(deps.AuthSvc))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(rdb))

	router.GET("/signin", signinPageHandler)
	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", signupHandler(deps.AuthSvc))
		auth.POST("/signin", signinHandler(deps.AuthSvc, deps.Carts))
		auth.POST("/anonymous", anonymousHandler(deps.AuthSvc))
		auth.POST("/signout", signoutHandler(deps.AuthSvc))
		auth.GET("/me", meHandler)
		auth.PATCH("/profile", updateProfileHandler(deps.AuthSvc))
	}

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.Catalog))
		api.GET("/products/:id", getProductHandler(deps.Catalog))
		api.GET("/categories", listCategoriesHandler(deps.Catalog))
		api.GET("/categories/:category/products", listCategoryProductsHandler(deps.Catalog))

		api.GET("/cart", getCartHandler(deps.Carts))
		api.POST("/cart/items", addCartItemHandler(deps.Carts))
		api.PATCH("/cart/items/:id", updateCartItemHandler(deps.Carts))
		api.DELETE("/cart/items/:id", removeCartItemHandler(deps.Carts))
		api.DELETE("/cart", clearCartHandler(deps.Carts))

		api.GET("/wishlist", getWishlistHandler(deps.Wishlists))
		api.POST("/wishlist", addWishlistHandler(deps.Wishlists))
		api.GET("/wishlist/:id", containsWishlistHandler(deps.Wishlists))
		api.DELETE("/wishlist/:id", removeWishlistHandler(deps.Wishlists))

		api.GET("/network", getNetworkHandler(deps.Network))
		api.PUT("/network", setNetworkHandler(deps.Network))

		api.POST("/checkout", checkoutHandler(deps.Carts, deps.OrderSvc, deps.Network))
		api.GET("/orders", listOrdersHandler(deps.OrderSvc))
	}

	return router, nil
}
