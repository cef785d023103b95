package domain

import "time"

// BookingStatus is the confirmation state of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
)

func (s BookingStatus) Valid() bool {
	return s == BookingConfirmed || s == BookingPending
}

// Booking represents one scheduled engagement. Amount is kept in the smallest currency unit.
type Booking struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Type            BusinessLine  `json:"type"`
	Date            time.Time     `json:"date"`
	Status          BookingStatus `json:"status"`
	CustomerName    string        `json:"customerName"`
	Amount          int64         `json:"amount"`
	Venue           string        `json:"venue"`
	Notes           string        `json:"notes,omitempty"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	CustomerPhone   string        `json:"customerPhone,omitempty"`
	CustomerCompany string        `json:"customerCompany,omitempty"`
	CustomerAddress string        `json:"customerAddress,omitempty"`
	EventType       string        `json:"eventType"`
	GuestCount      *int          `json:"guestCount,omitempty"`
	ReferralSource  string        `json:"referralSource,omitempty"`
}

// Validate checks the invariants every stored booking must hold.
func (b *Booking) Validate() error {
	switch {
	case b == nil:
		return ErrInvalidPayload
	case b.Amount < 0:
		return invalid("booking amount must not be negative")
	case !b.Type.Bookable():
		return invalid("booking type must be a single business line")
	case b.Date.IsZero():
		return invalid("booking date is required")
	case !b.Status.Valid():
		return invalid("booking status must be confirmed or pending")
	}
	return nil
}

// Clone returns a deep copy so callers cannot alias the optional fields.
func (b Booking) Clone() Booking {
	if b.GuestCount != nil {
		guests := *b.GuestCount
		b.GuestCount = &guests
	}
	return b
}

// Summary builds the lightweight view shown inside a heatmap cell.
func (b Booking) Summary(loc *time.Location) BookingSummary {
	if loc == nil {
		loc = time.Local
	}
	return BookingSummary{
		ID:           b.ID,
		Title:        b.Title,
		CustomerName: b.CustomerName,
		Amount:       b.Amount,
		Time:         b.Date.In(loc).Format("03:04 PM"),
		Type:         b.Type,
		Venue:        b.Venue,
	}
}

// BookingSummary is the per-booking detail attached to a heatmap cell.
type BookingSummary struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	CustomerName string       `json:"customerName"`
	Amount       int64        `json:"amount"`
	Time         string       `json:"time"`
	Type         BusinessLine `json:"type"`
	Venue        string       `json:"venue"`
}
