package dashboard

import (
	"time"

	"github.com/fastygo/dashboard/domain"
)

// SeedBookings returns the demo bookings used when nothing has been stored yet.
// Dates are relative to now in loc.
func SeedBookings(now time.Time, loc *time.Location) []domain.Booking {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	y, m, d := now.Date()
	at := func(months, days, hour int) time.Time {
		return time.Date(y, m+time.Month(months), d+days, hour, 0, 0, 0, loc)
	}
	onDay := func(months, day, hour int) time.Time {
		return time.Date(y, m+time.Month(months), day, hour, 0, 0, 0, loc)
	}
	guests := 100

	return []domain.Booking{
		{ID: "b1", Title: "Wedding Tent Setup", EventType: "Wedding", Type: domain.LineTents, Date: at(0, 2, 10), Status: domain.BookingConfirmed, CustomerName: "Priya Sharma", Amount: 120000, Venue: "Taj Falaknuma Palace, Hyderabad", CustomerEmail: "priya.s@example.com", CustomerPhone: "9876543210"},
		{ID: "b2", Title: "Corporate Catering", EventType: "Corporate Event", Type: domain.LineCatering, Date: at(0, 3, 13), Status: domain.BookingPending, CustomerName: "Rohan Kumar", Amount: 85000, Venue: "ITC Grand Bharat, Gurugram", CustomerCompany: "ABC Corp"},
		{ID: "b3", Title: "Birthday Party Tents", EventType: "Birthday Party", Type: domain.LineTents, Date: at(0, 0, 14), Status: domain.BookingConfirmed, CustomerName: "Ananya Reddy", Amount: 75000, Venue: "Community Hall, Sector 15", GuestCount: &guests},
		{ID: "b4", Title: "Anniversary Catering", EventType: "Anniversary", Type: domain.LineCatering, Date: at(-1, 0, 0), Status: domain.BookingConfirmed, CustomerName: "Vikram Singh", Amount: 150000, Venue: "The Oberoi Udaivilas, Udaipur", ReferralSource: "Word of Mouth"},
		{ID: "b5", Title: "Conference Setup", EventType: "Conference", Type: domain.LineTents, Date: at(-2, 1, 23), Status: domain.BookingConfirmed, CustomerName: "Meera Patel", Amount: 250000, Venue: "JW Marriott, Aerocity", CustomerEmail: "meera.p@example.net"},
		{ID: "b6", Title: "Gala Dinner Catering", EventType: "Gala Dinner", Type: domain.LineCatering, Date: at(-1, 1, 2), Status: domain.BookingPending, CustomerName: "Arjun Desai", Amount: 320000, Venue: "Leela Palace, New Delhi"},
		{ID: "b7", Title: "Evening Event Tents", EventType: "Social Gathering", Type: domain.LineTents, Date: at(0, 0, 19), Status: domain.BookingConfirmed, CustomerName: "Sneha Rao", Amount: 95000, Venue: "Neemrana Fort-Palace, Alwar"},
		{ID: "b8", Title: "Music Fest Tents", EventType: "Festival", Type: domain.LineTents, Date: onDay(-3, 15, 10), Status: domain.BookingConfirmed, CustomerName: "Aditya Mehta", Amount: 220000, Venue: "Red Fort Lawns, Delhi"},
		{ID: "b9", Title: "Book Launch Catering", EventType: "Book Launch", Type: domain.LineCatering, Date: onDay(-4, 5, 18), Status: domain.BookingConfirmed, CustomerName: "Ishaan Chatterjee", Amount: 180000, Venue: "Umaid Bhawan Palace, Jodhpur"},
		{ID: "b10", Title: "Sangeet Ceremony Setup", EventType: "Wedding Function", Type: domain.LineTents, Date: at(0, 5, 18), Status: domain.BookingPending, CustomerName: "Priya Sharma", Amount: 90000, Venue: "Sharma Farms, Chattarpur"},
		{ID: "b11", Title: "Office Lunch Catering", EventType: "Corporate Lunch", Type: domain.LineCatering, Date: at(0, 1, 12), Status: domain.BookingConfirmed, CustomerName: "Rohan Kumar", Amount: 45000, Venue: "Tech Park, Building A"},
	}
}

// SeedEmployees returns the demo staff list.
func SeedEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: "e1", Name: "John Smith", AvatarURL: "https://picsum.photos/seed/johns/80/80", Department: domain.DepartmentTents, Role: "Tent Lead", Status: domain.StatusPresent, CheckInTime: "08:55 AM", Email: "j.smith@example.com", Phone: "555-0101"},
		{ID: "e2", Name: "Maria Garcia", AvatarURL: "https://picsum.photos/seed/mariag/80/80", Department: domain.DepartmentCatering, Role: "Catering Manager", Status: domain.StatusLate, CheckInTime: "09:15 AM", Email: "m.garcia@example.com", Phone: "555-0102"},
		{ID: "e3", Name: "David Wilson", AvatarURL: "https://picsum.photos/seed/davidw/80/80", Department: domain.DepartmentTents, Role: "Setup Assistant", Status: domain.StatusAbsent, Email: "d.wilson@example.com", Phone: "555-0103"},
		{ID: "e4", Name: "Priya Sharma", AvatarURL: "https://picsum.photos/seed/priyas/80/80", Department: domain.DepartmentManagement, Role: "Operations Head", Status: domain.StatusPresent, CheckInTime: "09:00 AM", Email: "p.sharma@example.com", Phone: "555-0104"},
		{ID: "e5", Name: "Ken Adams", AvatarURL: "https://picsum.photos/seed/kena/80/80", Department: domain.DepartmentCatering, Role: "Chef", Status: domain.StatusOnLeave, Email: "k.adams@example.com", Phone: "555-0105"},
	}
}
