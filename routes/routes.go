package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"artisan-axis/controllers"
	"artisan-axis/middleware"
)

func SetupRoutes(router *gin.Engine) {
	productCtrl := controllers.NewProductController()
	orderCtrl := controllers.NewOrderController()
	reviewCtrl := controllers.NewReviewController()
	wishlistCtrl := controllers.NewWishlistController()
	newsletterCtrl := controllers.NewNewsletterController()
	contactCtrl := controllers.NewContactController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/products", productCtrl.GetProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/products/:id/reviews", reviewCtrl.GetProductReviews)
	router.POST("/newsletter", newsletterCtrl.Subscribe)
	router.POST("/contact", contactCtrl.SubmitContactForm)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/orders", orderCtrl.PlaceOrder)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.POST("/reviews", reviewCtrl.SubmitReview)
		auth.POST("/wishlist/toggle", wishlistCtrl.ToggleWishlist)
		auth.GET("/wishlist", wishlistCtrl.GetWishlist)
	}
}
