package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/repository"
)

type dashboardRepository struct {
	store repository.RecordStore
}

// NewDashboardRepository stores each collection as one JSON array under its own key.
func NewDashboardRepository(store repository.RecordStore) repository.DashboardRepository {
	return &dashboardRepository{store: store}
}

func (r *dashboardRepository) LoadBookings(ctx context.Context) ([]domain.Booking, error) {
	raw, err := r.store.Get(ctx, repository.KeyBookings)
	if err != nil {
		return nil, err
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, domain.WrapError(domain.ErrCodeCorrupt, "decode bookings", err)
	}
	if bookings == nil {
		return nil, domain.WrapError(domain.ErrCodeCorrupt, "decode bookings", domain.ErrCorruptRecord)
	}
	for i := range bookings {
		if bookings[i].ID == "" {
			return nil, domain.WrapError(domain.ErrCodeCorrupt, fmt.Sprintf("booking %d has no id", i), domain.ErrCorruptRecord)
		}
		if err := bookings[i].Validate(); err != nil {
			return nil, domain.WrapError(domain.ErrCodeCorrupt, "booking "+bookings[i].ID, err)
		}
	}
	return bookings, nil
}

func (r *dashboardRepository) SaveBookings(ctx context.Context, bookings []domain.Booking) error {
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	payload, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, repository.KeyBookings, payload)
}

func (r *dashboardRepository) LoadEmployees(ctx context.Context) ([]domain.Employee, error) {
	raw, err := r.store.Get(ctx, repository.KeyEmployees)
	if err != nil {
		return nil, err
	}

	var employees []domain.Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		return nil, domain.WrapError(domain.ErrCodeCorrupt, "decode employees", err)
	}
	if employees == nil {
		return nil, domain.WrapError(domain.ErrCodeCorrupt, "decode employees", domain.ErrCorruptRecord)
	}
	for i := range employees {
		if employees[i].ID == "" {
			return nil, domain.WrapError(domain.ErrCodeCorrupt, fmt.Sprintf("employee %d has no id", i), domain.ErrCorruptRecord)
		}
		if err := employees[i].Validate(); err != nil {
			return nil, domain.WrapError(domain.ErrCodeCorrupt, "employee "+employees[i].ID, err)
		}
	}
	return employees, nil
}

func (r *dashboardRepository) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	if employees == nil {
		employees = []domain.Employee{}
	}
	payload, err := json.Marshal(employees)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, repository.KeyEmployees, payload)
}
