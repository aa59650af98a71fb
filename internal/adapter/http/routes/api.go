package routes

import (
	"barbearia/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth         = "/auth"
	PathCatalog      = "/catalog"
	PathClients      = "/clients"
	PathEmployees    = "/employees"
	PathAppointments = "/appointments"
	PathCheckout     = "/checkout/sessions"
	PathSales        = "/sales"
	PathReports      = "/reports"
)

func addAuthRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathAuth+"/token", h.Auth.IssueToken)
}

func addCatalogRoutes(rg *gin.RouterGroup, h Handlers) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", h.Catalog.ListCatalog)
		catalog.POST("", h.Catalog.CreateCatalogItem)
		catalog.GET("/:id", h.Catalog.GetCatalogItem)
		catalog.PUT("/:id", h.Catalog.UpdateCatalogItem)
		catalog.DELETE("/:id", h.Catalog.DeleteCatalogItem)
	}
}

func addPeopleRoutes(rg *gin.RouterGroup, h Handlers) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.Clients.ListClients)
		clients.POST("", h.Clients.CreateClient)
		clients.PUT("/:id", h.Clients.UpdateClient)
		clients.DELETE("/:id", h.Clients.DeleteClient)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.GET("", h.Appointment.ListAppointments)
		appointments.POST("", h.Appointment.CreateAppointment)
		appointments.GET("/upcoming", h.Appointment.UpcomingAppointments)
		appointments.GET("/:id", h.Appointment.GetAppointment)
		appointments.DELETE("/:id", h.Appointment.DeleteAppointment)
	}

	// Listing is open to every operator; staff changes need an admin.
	employees := rg.Group(PathEmployees)
	{
		employees.GET("", h.Employees.ListEmployees)
		admin := employees.Group("", middleware.RequireAdmin(h.Tokens))
		admin.POST("", h.Employees.CreateEmployee)
		admin.PUT("/:id", h.Employees.UpdateEmployee)
		admin.DELETE("/:id", h.Employees.DeleteEmployee)
	}
}

func addCheckoutRoutes(rg *gin.RouterGroup, h Handlers) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", h.Checkout.OpenSession)
		checkout.GET("/:id", h.Checkout.GetSession)
		checkout.DELETE("/:id", h.Checkout.CloseSession)
		checkout.PUT("/:id/client", h.Checkout.SelectClient)
		checkout.PUT("/:id/staff", h.Checkout.SelectStaff)
		checkout.GET("/:id/search", h.Checkout.Search)
		checkout.POST("/:id/search/keys", h.Checkout.Navigate)
		checkout.POST("/:id/lines", h.Checkout.AddLine)
		checkout.DELETE("/:id/lines/:index", h.Checkout.RemoveLine)
		checkout.POST("/:id/confirm", h.Checkout.Confirm)
	}
}

func addSalesRoutes(rg *gin.RouterGroup, h Handlers) {
	sales := rg.Group(PathSales)
	{
		sales.GET("", h.Sales.ListSales)
		sales.GET("/:id", h.Sales.GetSale)
		sales.POST("/reconcile", middleware.RequireAdmin(h.Tokens), h.Sales.Reconcile)
	}

	reports := rg.Group(PathReports, middleware.RequireAdmin(h.Tokens))
	{
		reports.GET("/summary", h.Reports.Summary)
		reports.GET("/sales.xlsx", h.Reports.ExportSales)
	}
}
