package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dashboard/domain"
)

func TestRevenueReport(t *testing.T) {
	var buf bytes.Buffer
	err := RevenueReport(&buf, RevenueInput{
		Stats: domain.DerivedStats{
			Tents:    domain.StatValue{Line: domain.LineTents, Value: 850000, Change: 12.5},
			Catering: domain.StatValue{Line: domain.LineCatering, Value: 780000, Change: -3},
			Combined: domain.StatValue{Line: domain.LineCombined, Value: 1630000, Change: 4.1, Highlight: true},
		},
		Monthly: []domain.RevenuePoint{{Month: "Mar", Year: 2025, Tents: 400000, Catering: 130000, Revenue: 530000}},
		Busiest: []domain.HeatmapCell{{Day: "We", TimeSlot: "6pm", Bookings: 2, TotalRevenue: 95000}},
		Attendance: domain.AttendanceSummary{
			Total: 5, Present: 2, Late: 1, Absent: 1, OnLeave: 1,
		},
		GeneratedAt: time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC),
		Location:    time.UTC,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestBookingSlip(t *testing.T) {
	guests := 120
	var buf bytes.Buffer
	err := BookingSlip(&buf, domain.Booking{
		ID:           "book-1741775400000-1a2b3c4d",
		Title:        "Émile's Reception",
		Type:         domain.LineTents,
		Date:         time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC),
		Status:       domain.BookingConfirmed,
		CustomerName: "Émile Zola",
		Amount:       120000,
		Venue:        "Lake View Lawns",
		EventType:    "Reception",
		GuestCount:   &guests,
		Notes:        "Stage on the east side",
	}, time.UTC)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
