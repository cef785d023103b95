package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/fastygo/dashboard/api/handler"
)

type Handlers struct {
	Booking   *apiHandler.BookingHandler
	Employee  *apiHandler.EmployeeHandler
	Analytics *apiHandler.AnalyticsHandler
	Report    *apiHandler.ReportHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.GET("/api/v1/snapshot", handlers.Analytics.Snapshot)
	r.GET("/api/v1/stats", handlers.Analytics.Stats)
	r.GET("/api/v1/heatmap", handlers.Analytics.Heatmap)
	r.GET("/api/v1/analytics/monthly", handlers.Analytics.Monthly)
	r.GET("/api/v1/analytics/attendance", handlers.Analytics.Attendance)
	r.GET("/api/v1/customers", handlers.Analytics.Customers)

	// Bookings
	r.GET("/api/v1/bookings", handlers.Booking.List)
	r.POST("/api/v1/bookings", handlers.Booking.Create)
	r.PATCH("/api/v1/bookings/{id}/status", handlers.Booking.UpdateStatus)
	r.DELETE("/api/v1/bookings/{id}", handlers.Booking.Delete)
	r.GET("/api/v1/bookings/{id}/slip", handlers.Report.BookingSlip)

	// Employees
	r.GET("/api/v1/employees", handlers.Employee.List)
	r.POST("/api/v1/employees", handlers.Employee.Create)
	r.PUT("/api/v1/employees/{id}", handlers.Employee.Update)
	r.PATCH("/api/v1/employees/{id}/status", handlers.Employee.UpdateStatus)
	r.DELETE("/api/v1/employees/{id}", handlers.Employee.Delete)

	r.GET("/api/v1/reports/revenue.pdf", handlers.Report.Revenue)

	return r
}
