package dashboard_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/infrastructure/kv"
	"github.com/fastygo/dashboard/pkg/clock"
	"github.com/fastygo/dashboard/repository"
	boltrepo "github.com/fastygo/dashboard/repository/bolt"
	"github.com/fastygo/dashboard/repository/memory"
	"github.com/fastygo/dashboard/repository/records"
	"github.com/fastygo/dashboard/usecase/dashboard"
)

// Wednesday 2025-03-12 10:30 UTC.
var fixedNow = time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC)

type fixture struct {
	store   *dashboard.Store
	records *memory.RecordStore
	clock   *clock.MockClock
	logs    *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	recordStore := memory.NewRecordStore()
	return newFixtureWith(t, recordStore, recordsRepo(recordStore))
}

func recordsRepo(store repository.RecordStore) repository.DashboardRepository {
	return records.NewDashboardRepository(store)
}

func newFixtureWith(t *testing.T, recordStore *memory.RecordStore, repo repository.DashboardRepository) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	clk := clock.NewMockClock(fixedNow)
	store := dashboard.New(repo, zap.New(core), dashboard.Config{
		Clock:    clk,
		Location: time.UTC,
	})
	return &fixture{store: store, records: recordStore, clock: clk, logs: logs}
}

func ids[T interface{ domain.Booking | domain.Employee }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := any(item).(type) {
		case domain.Booking:
			out = append(out, v.ID)
		case domain.Employee:
			out = append(out, v.ID)
		}
	}
	return out
}

func TestLoadSeedsEmptyStorage(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Load(context.Background()))

	bookings := f.store.Bookings(repository.BookingFilter{})
	assert.Equal(t, []string{"b10", "b2", "b1", "b11", "b7", "b3", "b6", "b4", "b5", "b8", "b9"}, ids(bookings))

	employees := f.store.Employees(repository.EmployeeFilter{})
	assert.Equal(t, []string{"e3", "e1", "e5", "e2", "e4"}, ids(employees))

	stats := f.store.Stats()
	assert.Equal(t, int64(850000), stats.Tents.Value)
	assert.Equal(t, int64(780000), stats.Catering.Value)
	assert.Equal(t, int64(1630000), stats.Combined.Value)
	assert.True(t, stats.Combined.Highlight)

	// Seeds are written back so the next start reads them from storage.
	_, err := f.records.Get(context.Background(), repository.KeyBookings)
	require.NoError(t, err)
	_, err = f.records.Get(context.Background(), repository.KeyEmployees)
	require.NoError(t, err)
	assert.Equal(t, 2, f.logs.FilterMessage("no stored record, using seed data").Len())
	assert.False(t, f.store.Pending())
}

func TestAddBookingUpdatesTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("today", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.Load(ctx))
		before := f.store.Stats()

		created, err := f.store.AddBooking(ctx, domain.Booking{
			Title:        "Pooja Tent",
			Type:         domain.LineTents,
			Date:         fixedNow,
			Status:       domain.BookingConfirmed,
			CustomerName: "Kavya Iyer",
			Amount:       50000,
			Venue:        "Temple Grounds",
			EventType:    "Religious",
		})
		require.NoError(t, err)
		assert.Regexp(t, `^book-\d+-[0-9a-f]{8}$`, created.ID)

		after := f.store.Stats()
		assert.Equal(t, before.Tents.Value+50000, after.Tents.Value)
		assert.Equal(t, before.Catering.Value, after.Catering.Value)
		assert.Equal(t, before.Combined.Value+50000, after.Combined.Value)

		bookings := f.store.Bookings(repository.BookingFilter{})
		assert.NotEqual(t, created.ID, bookings[0].ID)
		assert.Len(t, bookings, 12)
	})

	t.Run("most recent goes first", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.Load(ctx))

		created, err := f.store.AddBooking(ctx, domain.Booking{
			Title:        "Reception Tent",
			Type:         domain.LineTents,
			Date:         fixedNow.AddDate(0, 0, 10),
			Status:       domain.BookingPending,
			CustomerName: "Kavya Iyer",
			Amount:       50000,
			Venue:        "Lake View Lawns",
			EventType:    "Reception",
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, f.store.Bookings(repository.BookingFilter{})[0].ID)
	})
}

func TestAddBookingEqualDateSortsAfterExisting(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Load(ctx))

	existing, err := f.store.Booking("b7")
	require.NoError(t, err)

	input := existing
	input.ID = "ignored"
	input.Title = "Second Evening Event"
	created, err := f.store.AddBooking(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", created.ID)

	order := ids(f.store.Bookings(repository.BookingFilter{}))
	assert.Equal(t, []string{"b10", "b2", "b1", "b11", "b7", created.ID, "b3"}, order[:7])
}

func TestAddBookingRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Load(ctx))

	cases := map[string]domain.Booking{
		"negative amount": {Type: domain.LineTents, Date: fixedNow, Status: domain.BookingPending, Amount: -1},
		"combined line":   {Type: domain.LineCombined, Date: fixedNow, Status: domain.BookingPending},
		"missing date":    {Type: domain.LineCatering, Status: domain.BookingPending},
		"unknown status":  {Type: domain.LineCatering, Date: fixedNow, Status: "cancelled"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.store.AddBooking(ctx, input)
			require.Error(t, err)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		})
	}
	assert.Len(t, f.store.Bookings(repository.BookingFilter{}), 11)
}

func TestAddThenDeleteRestoresBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Load(ctx))

	before := f.store.Bookings(repository.BookingFilter{})
	statsBefore := f.store.Stats()

	created, err := f.store.AddBooking(ctx, domain.Booking{
		Title:        "Mehendi Catering",
		Type:         domain.LineCatering,
		Date:         fixedNow.AddDate(0, 0, -1),
		Status:       domain.BookingConfirmed,
		CustomerName: "Nisha Verma",
		Amount:       64000,
		Venue:        "Garden Court",
		EventType:    "Wedding Function",
	})
	require.NoError(t, err)
	require.True(t, f.store.DeleteBooking(ctx, created.ID))

	if diff := cmp.Diff(before, f.store.Bookings(repository.BookingFilter{})); diff != "" {
		t.Fatalf("bookings differ after add/delete (-want +got):\n%s", diff)
	}
	assert.Equal(t, statsBefore, f.store.Stats())
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Load(ctx))
	before := f.store.Snapshot()

	applied, err := f.store.UpdateBookingStatus(ctx, "missing", domain.BookingConfirmed)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.False(t, f.store.DeleteBooking(ctx, "missing"))
	applied, err = f.store.UpdateEmployee(ctx, domain.Employee{ID: "missing", Name: "Nobody"})
	require.NoError(t, err)
	assert.False(t, applied)
	assert.False(t, f.store.DeleteEmployee(ctx, "missing"))
	applied, err = f.store.UpdateEmployeeStatus(ctx, "missing", domain.StatusPresent, "09:00 AM")
	require.NoError(t, err)
	assert.False(t, applied)

	after := f.store.Snapshot()
	assert.Equal(t, before.Bookings, after.Bookings)
	assert.Equal(t, before.Employees, after.Employees)
	assert.Equal(t, before.Stats, after.Stats)
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Load(ctx))

	applied, err := f.store.UpdateBookingStatus(ctx, "b2", domain.BookingConfirmed)
	require.NoError(t, err)
	assert.True(t, applied)

	got, err := f.store.Booking("b2")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, got.Status)
	assert.Equal(t, int64(85000), got.Amount)

	_, err = f.store.UpdateBookingStatus(ctx, "b2", "archived")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestUpdateEmployeeStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Load(ctx))

	applied, err := f.store.UpdateEmployeeStatus(ctx, "e3", domain.StatusPresent, "09:05 AM")
	require.NoError(t, err)
	require.True(t, applied)
	e3, err := f.store.Employee("e3")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPresent, e3.Status)
	assert.Equal(t, "09:05 AM", e3.CheckInTime)

	_, err = f.store.UpdateEmployeeStatus(ctx, "e2", domain.StatusLate, "")
	require.NoError(t, err)
	e2, _ := f.store.Employee("e2")
	assert.Equal(t, "09:15 AM", e2.CheckInTime)

	for _, status := range []domain.EmployeeStatus{domain.StatusAbsent, domain.StatusOnLeave} {
		_, err = f.store.UpdateEmployeeStatus(ctx, "e1", status, "10:00 AM")
		require.NoError(t, err)
		e1, _ := f.store.Employee("e1")
		assert.Equal(t, status, e1.Status)
		assert.Empty(t, e1.CheckInTime)
	}
}

func TestAddEmployeeCollatesNames(t *testing.T) {
	ctx := context.Background()
	recordStore := memory.NewRecordStore()
	require.NoError(t, recordStore.Put(ctx, repository.KeyEmployees, []byte(`[]`)))
	f := newFixtureWith(t, recordStore, recordsRepo(recordStore))
	require.NoError(t, f.store.Load(ctx))

	for _, name := range []string{"Zed", "Eve", "Émile Zola", "adam"} {
		_, err := f.store.AddEmployee(ctx, domain.Employee{
			Name:       name,
			Department: domain.DepartmentManagement,
			Role:       "Coordinator",
			Status:     domain.StatusAbsent,
		})
		require.NoError(t, err)
	}

	var names []string
	for _, e := range f.store.Employees(repository.EmployeeFilter{}) {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"adam", "Émile Zola", "Eve", "Zed"}, names)
}

func TestAddEmployeeDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Load(ctx))

	created, err := f.store.AddEmployee(ctx, domain.Employee{
		Name:        "Ravi Teja",
		Department:  domain.DepartmentTents,
		Role:        "Rigger",
		Status:      domain.StatusOnLeave,
		CheckInTime: "08:00 AM",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^emp-\d+-[0-9a-f]{8}$`, created.ID)
	assert.Equal(t, "https://picsum.photos/seed/RaviTeja/80/80", created.AvatarURL)
	assert.Empty(t, created.CheckInTime)

	_, err = f.store.AddEmployee(ctx, domain.Employee{Name: "No Department", Status: domain.StatusPresent})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestUpdateEmployeeMergesFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Load(ctx))

	applied, err := f.store.UpdateEmployee(ctx, domain.Employee{ID: "e1", Role: "Senior Tent Lead", Status: domain.StatusAbsent})
	require.NoError(t, err)
	require.True(t, applied)

	e1, err := f.store.Employee("e1")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", e1.Name)
	assert.Equal(t, "Senior Tent Lead", e1.Role)
	assert.Equal(t, "j.smith@example.com", e1.Email)
	assert.Empty(t, e1.CheckInTime)

	assert.True(t, f.store.DeleteEmployee(ctx, "e1"))
	_, err = f.store.Employee("e1")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestLoadFallsBackOnMalformedRecord(t *testing.T) {
	ctx := context.Background()
	recordStore := memory.NewRecordStore()
	require.NoError(t, recordStore.Put(ctx, repository.KeyBookings, []byte(`{"not":"an array"`)))
	require.NoError(t, recordStore.Put(ctx, repository.KeyEmployees, []byte(`[{"id":"x1","name":"Solo","department":"Management","status":"Absent","checkInTime":"07:00 AM"}]`)))

	f := newFixtureWith(t, recordStore, recordsRepo(recordStore))
	require.NoError(t, f.store.Load(ctx))

	assert.Len(t, f.store.Bookings(repository.BookingFilter{}), 11)
	employees := f.store.Employees(repository.EmployeeFilter{})
	require.Len(t, employees, 1)
	assert.Equal(t, "x1", employees[0].ID)
	assert.Empty(t, employees[0].CheckInTime)

	warnings := f.logs.FilterMessage("stored record is malformed, using seed data")
	require.Equal(t, 1, warnings.Len())
	assert.Equal(t, zapcore.WarnLevel, warnings.All()[0].Level)
}

func TestPersistRoundTrip(t *testing.T) {
	ctx := context.Background()

	run := func(t *testing.T, store repository.RecordStore) {
		clk := clock.NewMockClock(fixedNow)
		first := dashboard.New(recordsRepo(store), nil, dashboard.Config{Clock: clk, Location: time.UTC})
		require.NoError(t, first.Load(ctx))

		guests := 250
		_, err := first.AddBooking(ctx, domain.Booking{
			Title:          "Diwali Mela",
			Type:           domain.LineCatering,
			Date:           time.Date(2025, 3, 20, 19, 45, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			Status:         domain.BookingPending,
			CustomerName:   "Rotary Club",
			Amount:         275000,
			Venue:          "Club Grounds",
			EventType:      "Festival",
			GuestCount:     &guests,
			ReferralSource: "Instagram",
		})
		require.NoError(t, err)
		_, err = first.UpdateEmployeeStatus(ctx, "e3", domain.StatusPresent, "09:05 AM")
		require.NoError(t, err)

		second := dashboard.New(recordsRepo(store), nil, dashboard.Config{Clock: clk, Location: time.UTC})
		require.NoError(t, second.Load(ctx))

		if diff := cmp.Diff(first.Bookings(repository.BookingFilter{}), second.Bookings(repository.BookingFilter{})); diff != "" {
			t.Fatalf("bookings differ after reload (-first +second):\n%s", diff)
		}
		if diff := cmp.Diff(first.Employees(repository.EmployeeFilter{}), second.Employees(repository.EmployeeFilter{})); diff != "" {
			t.Fatalf("employees differ after reload (-first +second):\n%s", diff)
		}
		assert.Equal(t, first.Stats(), second.Stats())
	}

	t.Run("memory", func(t *testing.T) {
		run(t, memory.NewRecordStore())
	})

	t.Run("bolt", func(t *testing.T) {
		kvStore, err := kv.Open(filepath.Join(t.TempDir(), "dashboard.db"), "")
		require.NoError(t, err)
		t.Cleanup(func() { _ = kvStore.Close() })
		run(t, boltrepo.NewRecordRepository(kvStore))
	})
}

type flakyRepo struct {
	repository.DashboardRepository
	failSaves bool
	loadErr   error
	saves     int
}

func (r *flakyRepo) LoadBookings(ctx context.Context) ([]domain.Booking, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.DashboardRepository.LoadBookings(ctx)
}

func (r *flakyRepo) SaveBookings(ctx context.Context, bookings []domain.Booking) error {
	r.saves++
	if r.failSaves {
		return errors.New("disk full")
	}
	return r.DashboardRepository.SaveBookings(ctx, bookings)
}

func (r *flakyRepo) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	r.saves++
	if r.failSaves {
		return errors.New("disk full")
	}
	return r.DashboardRepository.SaveEmployees(ctx, employees)
}

func TestPersistFailureIsLoggedAndFlushed(t *testing.T) {
	ctx := context.Background()
	recordStore := memory.NewRecordStore()
	repo := &flakyRepo{DashboardRepository: recordsRepo(recordStore)}
	f := newFixtureWith(t, recordStore, repo)
	require.NoError(t, f.store.Load(ctx))

	repo.failSaves = true
	assert.True(t, f.store.DeleteBooking(ctx, "b1"))
	assert.True(t, f.store.Pending())
	assert.Equal(t, 1, f.logs.FilterMessage("failed to persist collection").Len())

	_, err := f.store.Booking("b1")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	require.Error(t, f.store.Flush(ctx))
	assert.True(t, f.store.Pending())

	repo.failSaves = false
	require.NoError(t, f.store.Flush(ctx))
	assert.False(t, f.store.Pending())

	reloaded := dashboard.New(recordsRepo(recordStore), nil, dashboard.Config{Clock: f.clock, Location: time.UTC})
	require.NoError(t, reloaded.Load(ctx))
	_, err = reloaded.Booking("b1")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestNothingPersistsBeforeLoad(t *testing.T) {
	ctx := context.Background()
	recordStore := memory.NewRecordStore()
	repo := &flakyRepo{DashboardRepository: recordsRepo(recordStore)}
	f := newFixtureWith(t, recordStore, repo)

	_, err := f.store.AddEmployee(ctx, domain.Employee{Name: "Early Bird", Department: domain.DepartmentTents, Status: domain.StatusAbsent})
	require.NoError(t, err)
	require.NoError(t, f.store.Persist(ctx))
	require.NoError(t, f.store.Flush(ctx))
	assert.Zero(t, repo.saves)
	assert.False(t, f.store.Loaded())
}

func TestLoadReturnsStorageOutage(t *testing.T) {
	recordStore := memory.NewRecordStore()
	repo := &flakyRepo{
		DashboardRepository: recordsRepo(recordStore),
		loadErr:             domain.WrapError(domain.ErrCodeUnavailable, "redis get", errors.New("connection refused")),
	}
	f := newFixtureWith(t, recordStore, repo)

	err := f.store.Load(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnavailable))
	assert.False(t, f.store.Loaded())
	assert.Zero(t, repo.saves)
}

func TestFiltersAndViews(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Load(ctx))

	tents := f.store.Bookings(repository.BookingFilter{Line: domain.LineTents})
	assert.Len(t, tents, 6)
	assert.Len(t, f.store.Bookings(repository.BookingFilter{Line: domain.LineCombined}), 11)
	assert.Equal(t, []string{"b10", "b1"}, ids(f.store.Bookings(repository.BookingFilter{Search: "priya"})))
	assert.Equal(t, []string{"b10", "b2", "b6"}, ids(f.store.Bookings(repository.BookingFilter{Status: domain.BookingPending})))

	assert.Equal(t, []string{"e5", "e2"}, ids(f.store.Employees(repository.EmployeeFilter{Department: domain.DepartmentCatering})))
	assert.Equal(t, []string{"e4"}, ids(f.store.Employees(repository.EmployeeFilter{Search: "operations"})))

	customers := f.store.Customers("")
	require.NotEmpty(t, customers)
	assert.Equal(t, "Arjun Desai", customers[0].Name)

	attendance := f.store.Attendance()
	assert.Equal(t, 5, attendance.Total)
	assert.Equal(t, 2, attendance.Present)

	assert.Len(t, f.store.MonthlyRevenue(6), 6)

	snapshot := f.store.Snapshot()
	assert.Equal(t, "We", snapshot.Highlight.Day)
	assert.Empty(t, snapshot.Highlight.TimeSlot)
	assert.Equal(t, fixedNow, snapshot.GeneratedAt)

	// Copies handed out must not alias the store.
	snapshot.Bookings[0].Amount = 1
	snapshot.Heatmap[0][0].Bookings = 99
	assert.NotEqual(t, int64(1), f.store.Bookings(repository.BookingFilter{})[0].Amount)
	assert.NotEqual(t, 99, f.store.Heatmap()[0][0].Bookings)
}
