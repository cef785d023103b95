package analytics

import (
	"math"
	"time"

	"github.com/fastygo/dashboard/domain"
)

// DefaultPeriod is the comparison window used for the change figures.
const DefaultPeriod = 30 * 24 * time.Hour

const (
	titleTents    = "Tent Bookings Value"
	titleCatering = "Catering Orders Value"
	titleCombined = "Total Bookings Value"
)

// Totals sums booking amounts per business line.
func Totals(bookings []domain.Booking) (tents, catering int64) {
	for _, b := range bookings {
		switch b.Type {
		case domain.LineTents:
			tents += b.Amount
		case domain.LineCatering:
			catering += b.Amount
		}
	}
	return tents, catering
}

// Compute derives the headline figures. Values cover every booking; Change compares the
// window (now-period, now] against the window before it, both keyed on booking date.
func Compute(bookings []domain.Booking, now time.Time, period time.Duration) domain.DerivedStats {
	if period <= 0 {
		period = DefaultPeriod
	}
	tents, catering := Totals(bookings)
	cur := windowTotals(bookings, now.Add(-period), now)
	prev := windowTotals(bookings, now.Add(-2*period), now.Add(-period))

	return domain.DerivedStats{
		Tents: domain.StatValue{
			Title:  titleTents,
			Line:   domain.LineTents,
			Value:  tents,
			Change: Change(cur.tents, prev.tents),
		},
		Catering: domain.StatValue{
			Title:  titleCatering,
			Line:   domain.LineCatering,
			Value:  catering,
			Change: Change(cur.catering, prev.catering),
		},
		Combined: domain.StatValue{
			Title:     titleCombined,
			Line:      domain.LineCombined,
			Value:     tents + catering,
			Change:    Change(cur.tents+cur.catering, prev.tents+prev.catering),
			Highlight: true,
		},
	}
}

// Change is the percentage delta from previous to current, rounded to one decimal.
// A period with no previous revenue reports 100 when anything was earned and 0 otherwise.
func Change(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	pct := float64(current-previous) / float64(previous) * 100
	return math.Round(pct*10) / 10
}

type lineTotals struct {
	tents    int64
	catering int64
}

func windowTotals(bookings []domain.Booking, from, to time.Time) lineTotals {
	var out lineTotals
	for _, b := range bookings {
		if !b.Date.After(from) || b.Date.After(to) {
			continue
		}
		switch b.Type {
		case domain.LineTents:
			out.tents += b.Amount
		case domain.LineCatering:
			out.catering += b.Amount
		}
	}
	return out
}
