package routes

import "github.com/gin-gonic/gin"

const PathOrders = "/orders"

func addOrderRoutes(rg *gin.RouterGroup, h Handlers) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.Orders.CreateOrder)
		orders.GET("/:id", h.Orders.GetOrder)
		orders.PATCH("/:id/status", h.Orders.UpdateStatus)
		orders.PATCH("/:id/description", h.Orders.UpdateDescription)

		orders.POST("/:id/services/:service_id", h.Orders.AttachService)
		orders.DELETE("/:id/services/:service_id", h.Orders.DetachService)
		orders.POST("/:id/materials/:material_id", h.Orders.AttachMaterial)
		orders.DELETE("/:id/materials/:material_id", h.Orders.DetachMaterial)

		orders.POST("/:id/payments", h.Payments.PayOrder)
		orders.GET("/:id/payments", h.Payments.ListPayments)
		orders.GET("/:id/payments/latest", h.Payments.GetLatestPayment)
	}
}
