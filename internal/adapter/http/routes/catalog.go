package routes

import "github.com/gin-gonic/gin"

const (
	PathCustomers = "/customers"
	PathVehicles  = "/vehicles"
	PathServices  = "/services"
	PathMaterials = "/materials"
)

func addCatalogRoutes(rg *gin.RouterGroup, h Handlers) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.Customers.CreateCustomer)
		customers.GET("", h.Customers.ListCustomers)
		customers.GET("/:id", h.Customers.GetCustomer)
		customers.PUT("/:id", h.Customers.UpdateCustomer)
		customers.DELETE("/:id", h.Customers.DeleteCustomer)
		customers.GET("/:id/vehicles", h.Vehicles.ListCustomerVehicles)
		customers.GET("/:id/orders", h.Orders.ListCustomerOrders)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", h.Vehicles.CreateVehicle)
		vehicles.GET("", h.Vehicles.ListVehicles)
		vehicles.GET("/:id", h.Vehicles.GetVehicle)
		vehicles.PUT("/:id", h.Vehicles.UpdateVehicle)
		vehicles.DELETE("/:id", h.Vehicles.DeleteVehicle)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", h.Services.CreateService)
		services.GET("", h.Services.ListServices)
		services.GET("/:id", h.Services.GetService)
		services.PUT("/:id", h.Services.UpdateService)
		services.DELETE("/:id", h.Services.DeleteService)
	}

	materials := rg.Group(PathMaterials)
	{
		materials.POST("", h.Materials.CreateMaterial)
		materials.GET("", h.Materials.ListMaterials)
		materials.GET("/:id", h.Materials.GetMaterial)
		materials.PUT("/:id", h.Materials.UpdateMaterial)
		materials.DELETE("/:id", h.Materials.DeleteMaterial)
	}
}
