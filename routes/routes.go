package routes

import (
	"github.com/lehoangkhoi01/fashion-shop-be/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes.
func RegisterRoutes(
	r *gin.Engine,
	productCtrl *controllers.ProductController,
	catalogCtrl *controllers.CatalogController,
	orderCtrl *controllers.OrderController,
	inventoryCtrl *controllers.InventoryController,
) {
	products := r.Group("/products")
	{
		products.GET("", productCtrl.GetProducts)
		products.GET("/paged", productCtrl.GetProductsPaged)
		products.GET("/:id", productCtrl.GetProductByID)
		products.POST("", productCtrl.CreateProduct)
		products.PUT("/:id", productCtrl.UpdateProduct)
		products.DELETE("/:id", productCtrl.DeleteProduct)
	}

	catalogs := r.Group("/catalogs")
	{
		catalogs.GET("", catalogCtrl.GetCatalogs)
		catalogs.GET("/:id", catalogCtrl.GetCatalogByID)
		catalogs.POST("", catalogCtrl.CreateCatalog)
		catalogs.PUT("/:id", catalogCtrl.UpdateCatalog)
		catalogs.DELETE("/:id", catalogCtrl.DeleteCatalog)
	}

	orders := r.Group("/orders")
	{
		orders.POST("", orderCtrl.PlaceOrder)
		orders.GET("", orderCtrl.GetOrders)
		orders.GET("/:id", orderCtrl.GetOrderByID)
		orders.GET("/user/:userId", orderCtrl.GetOrdersByUserID)
	}

	inventory := r.Group("/inventory")
	{
		inventory.GET("/:productId", inventoryCtrl.GetStock)
		inventory.POST("/check", inventoryCtrl.CheckStock)
		inventory.POST("/add", inventoryCtrl.AddStock)
		inventory.POST("/deduct", inventoryCtrl.DeductStock)
	}
}
