package router

import (
	"net/http"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/apierror"
	"github.com/lr4302179-jpg/backend-elchicho/internal/config"
	"github.com/lr4302179-jpg/backend-elchicho/internal/handler"
	"github.com/lr4302179-jpg/backend-elchicho/internal/middleware"
	"github.com/lr4302179-jpg/backend-elchicho/internal/repository"
	"github.com/lr4302179-jpg/backend-elchicho/internal/service"
	"github.com/lr4302179-jpg/backend-elchicho/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	adminRepo := repository.NewAdminRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(adminRepo, cfg)
	customerSvc := service.NewCustomerService(customerRepo, cfg)
	catalogSvc := service.NewCatalogService(categoryRepo)
	productSvc := service.NewProductService(productRepo)
	saleSvc := service.NewSaleService(saleRepo, dispatcher)
	dashboardSvc := service.NewDashboardService(productRepo, saleRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	customersH := handler.NewCustomersHandler(customerSvc, saleSvc)
	categoriesH := handler.NewCategoriesHandler(catalogSvc)
	productsH := handler.NewProductsHandler(productSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	api := r.Group("/api")

	// Public
	api.GET("/health", handler.Health(db, rdb))
	api.GET("/products", productsH.ListPublic)
	api.GET("/products/:id", productsH.GetPublic)
	api.GET("/categories", categoriesH.List)

	// Sale capture — anonymous allowed, a customer token links the order
	api.POST("/sales", middleware.OptionalJWT(cfg.JWTSecret), salesH.Create)

	// Customer accounts
	clients := api.Group("/clients")
	{
		clients.POST("/register", middleware.LoginRateLimiter(), customersH.Register)
		clients.POST("/login", middleware.LoginRateLimiter(), customersH.Login)

		me := clients.Group("", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole(middleware.RoleCustomer))
		{
			me.GET("/me", customersH.Me)
			me.GET("/orders", customersH.MyOrders)
		}
	}

	// Admin
	api.POST("/admin/login", middleware.LoginRateLimiter(), authH.Login)

	admin := api.Group("/admin", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole(middleware.RoleAdmin))
	{
		admin.GET("/verify", authH.Verify)
		admin.GET("/dashboard", dashboardH.Summary)

		admin.POST("/categories", categoriesH.Create)
		admin.PUT("/categories/:id", categoriesH.Update)
		admin.DELETE("/categories/:id", categoriesH.Delete)

		admin.GET("/subcategories", categoriesH.ListSubcategories)
		admin.POST("/subcategories", categoriesH.CreateSubcategory)
		admin.PUT("/subcategories/:id", categoriesH.UpdateSubcategory)
		admin.DELETE("/subcategories/:id", categoriesH.DeleteSubcategory)

		admin.GET("/products", productsH.ListAdmin)
		admin.GET("/products/:id", productsH.GetAdmin)
		admin.POST("/products", productsH.Create)
		admin.PUT("/products/:id", productsH.Update)
		admin.DELETE("/products/:id", productsH.Delete)

		admin.GET("/clients", customersH.List)
		admin.PUT("/clients/:id", customersH.Update)
		admin.DELETE("/clients/:id", customersH.Delete)

		admin.GET("/sales", salesH.List)
		admin.GET("/sales/:id", salesH.Get)
		admin.PUT("/sales/:id", salesH.UpdateStatus)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierror.New("route not found"))
	})

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
