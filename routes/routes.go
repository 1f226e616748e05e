package routes

import (
	"net/http"

	"storefront/config"
	"storefront/controllers"
	"storefront/libs"
	"storefront/middleware"
	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the long-lived resources the HTTP layer is built from.
// Cache, Mailer and Metrics may be nil.
type Dependencies struct {
	Config  *config.Config
	DB      *pgxpool.Pool
	Cache   *libs.Cache
	Mailer  *libs.Mailer
	Metrics *libs.Metrics
	Logger  *zap.Logger
}

// NewRouter builds the engine with its middleware chain and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}
	router.Use(middleware.CORSMiddleware(deps.Config.OriginURL))
	router.Use(middleware.RequestTimeout(deps.Config.RequestTimeout))

	SetupRoutes(router, deps)
	return router
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	var notifier services.OrderNotifier
	if deps.Mailer != nil {
		notifier = deps.Mailer
	}

	productService := services.NewProductService(deps.DB, deps.Cache, deps.Logger)

	cartCtrl := controllers.NewCartController(services.NewCartService(deps.DB, deps.Logger), deps.Logger)
	orderCtrl := controllers.NewOrderController(services.NewOrderService(deps.DB, notifier, deps.Metrics, deps.Logger), deps.Logger)
	productCtrl := controllers.NewProductController(productService, deps.Logger)
	collectionCtrl := controllers.NewCollectionController(productService, deps.Logger)
	customerCtrl := controllers.NewCustomerController(services.NewCustomerService(deps.DB, deps.Logger), deps.Logger)
	tagCtrl := controllers.NewTagController(services.NewTagService(deps.DB, deps.Logger), deps.Logger)
	reviewCtrl := controllers.NewReviewController(services.NewReviewService(deps.DB), deps.Logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		if err := deps.DB.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.POST("/carts", cartCtrl.CreateCart)
	router.GET("/carts/:id", cartCtrl.GetCart)
	router.DELETE("/carts/:id", cartCtrl.DeleteCart)
	router.GET("/carts/:id/items", cartCtrl.ListItems)
	router.POST("/carts/:id/items", cartCtrl.AddItem)
	router.GET("/carts/:id/items/:item_id", cartCtrl.GetItem)
	router.PATCH("/carts/:id/items/:item_id", cartCtrl.UpdateItem)
	router.DELETE("/carts/:id/items/:item_id", cartCtrl.DeleteItem)

	router.GET("/products/:id", productCtrl.GetProduct)
	router.GET("/products/:id/reviews", reviewCtrl.ListReviews)
	router.POST("/products/:id/reviews", reviewCtrl.CreateReview)
	router.GET("/products/:id/tags", tagCtrl.TagsFor(models.KindProduct))
	router.GET("/collections/:id", collectionCtrl.GetCollection)
	router.GET("/collections/:id/tags", tagCtrl.TagsFor(models.KindCollection))
	router.GET("/tags", tagCtrl.ListTags)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(deps.Config.JWTSecret))
	{
		auth.POST("/orders", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.ListOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrder)
		auth.GET("/customers/me", customerCtrl.GetMe)
		auth.PUT("/customers/me", customerCtrl.UpdateMe)
	}

	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware(deps.Config.JWTSecret), middleware.AdminMiddleware())
	{
		admin.PATCH("/orders/:id", orderCtrl.UpdateOrder)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		admin.DELETE("/products/:id/reviews/:review_id", reviewCtrl.DeleteReview)
		admin.POST("/products/:id/tags", tagCtrl.Attach(models.KindProduct))
		admin.DELETE("/products/:id/tags/:tag_id", tagCtrl.Detach(models.KindProduct))

		admin.POST("/collections", collectionCtrl.CreateCollection)
		admin.PATCH("/collections/:id", collectionCtrl.UpdateCollection)
		admin.DELETE("/collections/:id", collectionCtrl.DeleteCollection)
		admin.POST("/collections/:id/tags", tagCtrl.Attach(models.KindCollection))
		admin.DELETE("/collections/:id/tags/:tag_id", tagCtrl.Detach(models.KindCollection))

		admin.POST("/tags", tagCtrl.CreateTag)
	}
}
