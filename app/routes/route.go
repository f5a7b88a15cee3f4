package routes

import (
	"net/http"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/mehdiben7/tiwashop/app/configs"
	"github.com/mehdiben7/tiwashop/app/handlers"
	"github.com/mehdiben7/tiwashop/app/handlers/admin"
	"github.com/mehdiben7/tiwashop/app/middlewares"
	"github.com/mehdiben7/tiwashop/app/repositories"
	"github.com/mehdiben7/tiwashop/app/services"
	"github.com/mehdiben7/tiwashop/app/utils/renderer"
	"github.com/mehdiben7/tiwashop/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV, keys *configs.SessionKeys, s3Client *s3.Client) *mux.Router {
	render := renderer.New()
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)

	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	orderService := services.NewOrderService(orderRepo, productRepo)
	storageService := services.NewStorageService(s3Client, env.S3Bucket, env.S3PublicBaseURL)

	catalogHandler := handlers.NewCatalogHandler(productRepo, render)
	orderHandler := handlers.NewOrderHandler(orderService, orderRepo, render, validate)
	authHandler := handlers.NewAuthHandler(render, userRepo, sessionStore, validate)
	adminHandler := admin.NewAdminHandler(productRepo, orderRepo, storageService, render, validate)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLoggerMiddleware)
	router.Use(middlewares.SessionUserMiddleware(sessionStore, userRepo))

	// Public storefront API.
	router.HandleFunc("/api/products", catalogHandler.Products).Methods("GET")
	router.HandleFunc("/api/products/{id}", catalogHandler.ProductDetail).Methods("GET")
	router.HandleFunc("/api/orders", orderHandler.Create).Methods("POST")
	router.HandleFunc("/api/orders/track", orderHandler.Track).Methods("GET")

	// Admin API. CSRF covers the whole subrouter; the SPA fetches a token
	// from /api/admin/csrf before its first mutation (login included).
	adminRouter := router.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(csrf.Protect(
		keys.AuthKey,
		csrf.Secure(env.APP_ENV == "production"),
		csrf.Path("/"),
	))

	adminRouter.HandleFunc("/csrf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CSRF-Token", csrf.Token(r))
		w.WriteHeader(http.StatusNoContent)
	}).Methods("GET")

	adminRouter.HandleFunc("/login", authHandler.Login).Methods("POST")
	adminRouter.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	protected := adminRouter.NewRoute().Subrouter()
	protected.Use(middlewares.AdminAuthMiddleware(render))

	protected.HandleFunc("/me", authHandler.Me).Methods("GET")
	protected.HandleFunc("/dashboard", adminHandler.Dashboard).Methods("GET")

	protected.HandleFunc("/products", adminHandler.ListProducts).Methods("GET")
	protected.HandleFunc("/products", adminHandler.CreateProduct).Methods("POST")
	protected.HandleFunc("/products/{id}", adminHandler.UpdateProduct).Methods("PUT")
	protected.HandleFunc("/products/{id}", adminHandler.DeleteProduct).Methods("DELETE")
	protected.HandleFunc("/uploads", adminHandler.UploadImages).Methods("POST")

	protected.HandleFunc("/orders", adminHandler.ListOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}", adminHandler.GetOrder).Methods("GET")
	protected.HandleFunc("/orders/{id}/status", adminHandler.UpdateOrderStatus).Methods("PUT")
	protected.HandleFunc("/orders/{id}", adminHandler.DeleteOrder).Methods("DELETE")

	return router
}
