package repository

import (
	"context"

	"github.com/fastygo/dashboard/domain"
)

// BookingFilter narrows the bookings list the way the Bookings view does.
// An empty Line or LineCombined matches both business lines.
type BookingFilter struct {
	Line   domain.BusinessLine
	Status domain.BookingStatus
	Search string
}

type EmployeeFilter struct {
	Department domain.Department
	Status     domain.EmployeeStatus
	Search     string
}

// DashboardRepository loads and saves the complete booking and employee collections.
type DashboardRepository interface {
	LoadBookings(ctx context.Context) ([]domain.Booking, error)
	SaveBookings(ctx context.Context, bookings []domain.Booking) error
	LoadEmployees(ctx context.Context) ([]domain.Employee, error)
	SaveEmployees(ctx context.Context, employees []domain.Employee) error
}
