package analytics

import (
	"strings"
	"time"

	"github.com/fastygo/dashboard/domain"
)

// DefaultMonths is the length of the monthly revenue series when none is requested.
const DefaultMonths = 6

// MonthlyRevenue returns one point per calendar month, oldest first, ending with the month of now.
func MonthlyRevenue(bookings []domain.Booking, now time.Time, months int, loc *time.Location) []domain.RevenuePoint {
	if months <= 0 {
		months = DefaultMonths
	}
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	first := time.Date(local.Year(), local.Month()-time.Month(months-1), 1, 0, 0, 0, 0, loc)

	points := make([]domain.RevenuePoint, months)
	for i := range points {
		m := first.AddDate(0, i, 0)
		points[i] = domain.RevenuePoint{Month: m.Month().String()[:3], Year: m.Year()}
	}

	base := monthKey(first)
	for _, b := range bookings {
		idx := monthKey(b.Date.In(loc)) - base
		if idx < 0 || idx >= months {
			continue
		}
		p := &points[idx]
		switch b.Type {
		case domain.LineTents:
			p.Tents += b.Amount
		case domain.LineCatering:
			p.Catering += b.Amount
		}
		p.Revenue += b.Amount
	}
	return points
}

func monthKey(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// Customers groups bookings by customer name. Contact details come from the most recent booking carrying them.
func Customers(bookings []domain.Booking) []domain.CustomerSummary {
	index := make(map[string]int)
	var out []domain.CustomerSummary
	contactDate := make(map[string]time.Time)

	for _, b := range bookings {
		name := strings.TrimSpace(b.CustomerName)
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, domain.CustomerSummary{Name: name, Lines: []domain.BusinessLine{}})
		}
		c := &out[i]
		c.Bookings++
		c.TotalAmount += b.Amount
		if !containsLine(c.Lines, b.Type) {
			c.Lines = append(c.Lines, b.Type)
		}
		if b.Date.After(c.LastBooking) {
			c.LastBooking = b.Date
		}
		if hasContact(b) && !b.Date.Before(contactDate[name]) {
			contactDate[name] = b.Date
			c.Email = b.CustomerEmail
			c.Phone = b.CustomerPhone
			c.Company = b.CustomerCompany
		}
	}

	sortCustomers(out)
	return out
}

// FilterCustomers keeps customers whose name, email, phone or company contains term, case-insensitively.
func FilterCustomers(customers []domain.CustomerSummary, term string) []domain.CustomerSummary {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return customers
	}
	out := make([]domain.CustomerSummary, 0, len(customers))
	for _, c := range customers {
		if containsFold(term, c.Name, c.Email, c.Phone, c.Company) {
			out = append(out, c)
		}
	}
	return out
}

// Attendance counts employees by status and department.
func Attendance(employees []domain.Employee) domain.AttendanceSummary {
	summary := domain.AttendanceSummary{
		Total:        len(employees),
		ByDepartment: make(map[domain.Department]int),
	}
	for _, e := range employees {
		switch e.Status {
		case domain.StatusPresent:
			summary.Present++
		case domain.StatusLate:
			summary.Late++
		case domain.StatusAbsent:
			summary.Absent++
		case domain.StatusOnLeave:
			summary.OnLeave++
		}
		summary.ByDepartment[e.Department]++
	}
	return summary
}

func hasContact(b domain.Booking) bool {
	return b.CustomerEmail != "" || b.CustomerPhone != "" || b.CustomerCompany != ""
}

func containsLine(lines []domain.BusinessLine, line domain.BusinessLine) bool {
	for _, l := range lines {
		if l == line {
			return true
		}
	}
	return false
}

func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
