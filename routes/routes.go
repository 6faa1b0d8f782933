package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Kristian-01/nine27-mobile/controllers"
	"github.com/Kristian-01/nine27-mobile/middleware"
	"github.com/Kristian-01/nine27-mobile/services"
)

// Controllers groups the handlers wired into the router.
type Controllers struct {
	Auth     *controllers.AuthController
	Product  *controllers.ProductController
	Category *controllers.CategoryController
	Cart     *controllers.CartController
	Order    *controllers.OrderController
}

// Register wires all endpoints onto the engine.
func Register(r *gin.Engine, ctrl Controllers, tokens *services.TokenService) {
	auth := middleware.AuthMiddleware(tokens)

	authRoutes := r.Group("/auth")
	authRoutes.POST("/register", ctrl.Auth.Register)
	authRoutes.POST("/login", ctrl.Auth.Login)
	authRoutes.GET("/profile", auth, ctrl.Auth.Profile)
	authRoutes.PUT("/profile", auth, ctrl.Auth.UpdateProfile)

	// Public catalog routes
	r.GET("/products", ctrl.Product.GetProducts)
	r.GET("/products/featured", ctrl.Product.GetFeatured)
	r.GET("/products/:id", ctrl.Product.GetProductByID)
	r.POST("/products", auth, ctrl.Product.CreateProduct)

	r.GET("/categories", ctrl.Category.GetCategories)
	r.GET("/categories/:slug", ctrl.Category.GetCategoryBySlug)
	r.POST("/categories", auth, ctrl.Category.CreateCategory)

	cartRoutes := r.Group("/cart")
	cartRoutes.Use(auth)
	cartRoutes.GET("", ctrl.Cart.GetCart)
	cartRoutes.POST("", ctrl.Cart.AddItem)
	cartRoutes.PUT("/:id", ctrl.Cart.UpdateItem)
	cartRoutes.DELETE("/:id", ctrl.Cart.RemoveItem)
	cartRoutes.DELETE("", ctrl.Cart.Clear)

	orderRoutes := r.Group("/orders")
	orderRoutes.Use(auth)
	orderRoutes.GET("", ctrl.Order.GetOrders)
	orderRoutes.POST("", ctrl.Order.CreateOrder)
	orderRoutes.GET("/:id", ctrl.Order.GetOrderByID)
	orderRoutes.PATCH("/:id/cancel", ctrl.Order.CancelOrder)
}
