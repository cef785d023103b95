package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/analytics"
	"github.com/fastygo/dashboard/pkg/clock"
	"github.com/fastygo/dashboard/repository"
)

// Config tunes the derived figures. Zero values fall back to the real clock,
// the host time zone and analytics.DefaultPeriod.
type Config struct {
	Clock       clock.Clock
	Location    *time.Location
	StatsPeriod time.Duration
}

// Store owns the booking and employee collections, keeps the derived
// statistics current and writes every change through the repository.
type Store struct {
	repo   repository.DashboardRepository
	logger *zap.Logger
	clock  clock.Clock
	loc    *time.Location
	period time.Duration

	mu        sync.Mutex
	collator  *collate.Collator
	bookings  []domain.Booking
	employees []domain.Employee
	stats     domain.DerivedStats
	heatmap   [][]domain.HeatmapCell
	loaded    bool

	dirtyBookings  bool
	dirtyEmployees bool
}

func New(repo repository.DashboardRepository, logger *zap.Logger, cfg Config) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.NewRealClock()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.StatsPeriod <= 0 {
		cfg.StatsPeriod = analytics.DefaultPeriod
	}
	return &Store{
		repo:     repo,
		logger:   logger,
		clock:    cfg.Clock,
		loc:      cfg.Location,
		period:   cfg.StatsPeriod,
		collator: collate.New(language.English),
		heatmap:  analytics.EmptyHeatmap(),
	}
}

// Load restores both collections. A collection that was never stored or
// cannot be decoded is replaced by the seed data; any other storage error
// is returned and the store stays unloaded.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	bookings, err := s.repo.LoadBookings(ctx)
	if err != nil {
		if !s.fallback(repository.KeyBookings, err) {
			return fmt.Errorf("load bookings: %w", err)
		}
		bookings = SeedBookings(now, s.loc)
	}

	employees, err := s.repo.LoadEmployees(ctx)
	if err != nil {
		if !s.fallback(repository.KeyEmployees, err) {
			return fmt.Errorf("load employees: %w", err)
		}
		employees = SeedEmployees()
	}

	for i := range employees {
		employees[i].NormalizeCheckIn()
	}

	s.bookings = bookings
	s.employees = employees
	sortBookings(s.bookings)
	s.sortEmployees()
	s.recompute()
	s.loaded = true

	s.logger.Info("dashboard data loaded",
		zap.Int("bookings", len(s.bookings)),
		zap.Int("employees", len(s.employees)))

	s.saveBookings(ctx)
	s.saveEmployees(ctx)
	return nil
}

// fallback reports whether a load error should be answered with seed data.
func (s *Store) fallback(key string, err error) bool {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		s.logger.Info("no stored record, using seed data", zap.String("key", key))
		return true
	case domain.IsDomainError(err, domain.ErrCodeCorrupt):
		s.logger.Warn("stored record is malformed, using seed data", zap.String("key", key), zap.Error(err))
		return true
	}
	return false
}

// Persist writes both collections regardless of their dirty state.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil
	}
	return errors.Join(s.saveBookings(ctx), s.saveEmployees(ctx))
}

// Flush retries the collections whose last write failed.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil
	}
	var err error
	if s.dirtyBookings {
		err = errors.Join(err, s.saveBookings(ctx))
	}
	if s.dirtyEmployees {
		err = errors.Join(err, s.saveEmployees(ctx))
	}
	return err
}

// Pending reports whether a collection still waits for a successful write.
func (s *Store) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirtyBookings || s.dirtyEmployees
}

func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Store) Location() *time.Location {
	return s.loc
}

// AddBooking stores a new booking under a fresh id. Any id on the input is ignored.
func (s *Store) AddBooking(ctx context.Context, input domain.Booking) (domain.Booking, error) {
	booking := input.Clone()
	if err := booking.Validate(); err != nil {
		return domain.Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = s.newID("book")
	s.bookings = append(s.bookings, booking)
	sortBookings(s.bookings)
	s.recompute()
	s.saveBookings(ctx)

	s.logger.Debug("booking added", zap.String("id", booking.ID), zap.String("type", string(booking.Type)))
	return booking.Clone(), nil
}

// UpdateBookingStatus changes only the status. It reports false for an unknown id.
func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (bool, error) {
	if !status.Valid() {
		return false, domain.WrapError(domain.ErrCodeInvalid, "booking status must be confirmed or pending", domain.ErrInvalidPayload)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.bookingIndex(id)
	if idx < 0 {
		return false, nil
	}
	s.bookings[idx].Status = status
	s.recompute()
	s.saveBookings(ctx)
	return true, nil
}

// DeleteBooking removes the booking and reports whether it existed.
func (s *Store) DeleteBooking(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.bookingIndex(id)
	if idx < 0 {
		return false
	}
	s.bookings = append(s.bookings[:idx], s.bookings[idx+1:]...)
	s.recompute()
	s.saveBookings(ctx)
	return true
}

// AddEmployee stores a new employee under a fresh id, filling in a default avatar.
func (s *Store) AddEmployee(ctx context.Context, input domain.Employee) (domain.Employee, error) {
	employee := input
	if employee.AvatarURL == "" {
		employee.AvatarURL = DefaultAvatar(employee.Name)
	}
	employee.NormalizeCheckIn()
	if err := employee.Validate(); err != nil {
		return domain.Employee{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	employee.ID = s.newID("emp")
	s.employees = append(s.employees, employee)
	s.sortEmployees()
	s.saveEmployees(ctx)
	return employee, nil
}

// UpdateEmployee merges the non-empty fields of update into the stored employee with the same id.
func (s *Store) UpdateEmployee(ctx context.Context, update domain.Employee) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.employeeIndex(update.ID)
	if idx < 0 {
		return false, nil
	}
	merged := mergeEmployee(s.employees[idx], update)
	merged.NormalizeCheckIn()
	if err := merged.Validate(); err != nil {
		return false, err
	}
	s.employees[idx] = merged
	s.sortEmployees()
	s.saveEmployees(ctx)
	return true, nil
}

// DeleteEmployee removes the employee and reports whether it existed.
func (s *Store) DeleteEmployee(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.employeeIndex(id)
	if idx < 0 {
		return false
	}
	s.employees = append(s.employees[:idx], s.employees[idx+1:]...)
	s.saveEmployees(ctx)
	return true
}

// UpdateEmployeeStatus sets the attendance status. Present and Late keep
// checkInTime, or the previous time when it is empty; other statuses clear it.
func (s *Store) UpdateEmployeeStatus(ctx context.Context, id string, status domain.EmployeeStatus, checkInTime string) (bool, error) {
	if !status.Valid() {
		return false, domain.WrapError(domain.ErrCodeInvalid, "unknown employee status", domain.ErrInvalidPayload)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.employeeIndex(id)
	if idx < 0 {
		return false, nil
	}
	employee := &s.employees[idx]
	employee.Status = status
	if status.ChecksIn() {
		if checkInTime != "" {
			employee.CheckInTime = checkInTime
		}
	} else {
		employee.CheckInTime = ""
	}
	s.saveEmployees(ctx)
	return true, nil
}

func (s *Store) Bookings(filter repository.BookingFilter) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if matchBooking(b, filter) {
			result = append(result, b.Clone())
		}
	}
	return result
}

func (s *Store) Booking(id string) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.bookingIndex(id)
	if idx < 0 {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	return s.bookings[idx].Clone(), nil
}

func (s *Store) Employees(filter repository.EmployeeFilter) []domain.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if matchEmployee(e, filter) {
			result = append(result, e)
		}
	}
	return result
}

func (s *Store) Employee(id string) (domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.employeeIndex(id)
	if idx < 0 {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	return s.employees[idx], nil
}

// Stats returns the figures computed after the latest booking change.
func (s *Store) Stats() domain.DerivedStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Store) Heatmap() [][]domain.HeatmapCell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyHeatmap(s.heatmap)
}

// Highlight locates the current moment on the heatmap.
func (s *Store) Highlight() domain.Highlight {
	return analytics.Highlight(s.clock.Now(), s.loc)
}

// Snapshot returns everything the dashboard renders in one consistent copy.
func (s *Store) Snapshot() domain.Snapshot {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]domain.Booking, len(s.bookings))
	for i, b := range s.bookings {
		bookings[i] = b.Clone()
	}
	employees := make([]domain.Employee, len(s.employees))
	copy(employees, s.employees)

	return domain.Snapshot{
		Bookings:    bookings,
		Employees:   employees,
		Stats:       s.stats,
		Heatmap:     copyHeatmap(s.heatmap),
		Highlight:   analytics.Highlight(now, s.loc),
		GeneratedAt: now,
	}
}

func (s *Store) Customers(search string) []domain.CustomerSummary {
	s.mu.Lock()
	customers := analytics.Customers(s.bookings)
	s.mu.Unlock()
	return analytics.FilterCustomers(customers, search)
}

func (s *Store) MonthlyRevenue(months int) []domain.RevenuePoint {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.MonthlyRevenue(s.bookings, now, months, s.loc)
}

func (s *Store) Attendance() domain.AttendanceSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.Attendance(s.employees)
}

func (s *Store) recompute() {
	s.stats = analytics.Compute(s.bookings, s.clock.Now(), s.period)
	s.heatmap = analytics.BuildHeatmap(s.bookings, s.loc)
}

func (s *Store) saveBookings(ctx context.Context) error {
	if !s.loaded {
		return nil
	}
	if err := s.repo.SaveBookings(ctx, s.bookings); err != nil {
		s.dirtyBookings = true
		s.logger.Error("failed to persist collection", zap.String("key", repository.KeyBookings), zap.Error(err))
		return err
	}
	s.dirtyBookings = false
	return nil
}

func (s *Store) saveEmployees(ctx context.Context) error {
	if !s.loaded {
		return nil
	}
	if err := s.repo.SaveEmployees(ctx, s.employees); err != nil {
		s.dirtyEmployees = true
		s.logger.Error("failed to persist collection", zap.String("key", repository.KeyEmployees), zap.Error(err))
		return err
	}
	s.dirtyEmployees = false
	return nil
}

func (s *Store) bookingIndex(id string) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) employeeIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) newID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, s.clock.Now().UnixMilli(), uuid.NewString()[:8])
}

// sortEmployees orders by name with English collation so accented names sort with their base letter.
func (s *Store) sortEmployees() {
	sort.SliceStable(s.employees, func(i, j int) bool {
		return s.collator.CompareString(s.employees[i].Name, s.employees[j].Name) < 0
	})
}

// sortBookings orders newest first. Equal dates keep their relative order.
func sortBookings(bookings []domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Date.After(bookings[j].Date)
	})
}

func copyHeatmap(grid [][]domain.HeatmapCell) [][]domain.HeatmapCell {
	out := make([][]domain.HeatmapCell, len(grid))
	for i, row := range grid {
		out[i] = make([]domain.HeatmapCell, len(row))
		for j, cell := range row {
			details := make([]domain.BookingSummary, len(cell.BookingDetails))
			copy(details, cell.BookingDetails)
			cell.BookingDetails = details
			out[i][j] = cell
		}
	}
	return out
}
