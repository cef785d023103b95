package transport

// BookingRequest is the body of POST /api/v1/bookings. Date is RFC 3339.
type BookingRequest struct {
	Title           string `json:"title"`
	Type            string `json:"type"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	CustomerName    string `json:"customerName"`
	Amount          int64  `json:"amount"`
	Venue           string `json:"venue"`
	Notes           string `json:"notes"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerCompany string `json:"customerCompany"`
	CustomerAddress string `json:"customerAddress"`
	EventType       string `json:"eventType"`
	GuestCount      *int   `json:"guestCount"`
	ReferralSource  string `json:"referralSource"`
}

type BookingStatusRequest struct {
	Status string `json:"status"`
}

// EmployeeRequest serves both create and update. Empty fields leave an update untouched.
type EmployeeRequest struct {
	Name        string `json:"name"`
	AvatarURL   string `json:"avatarUrl"`
	Department  string `json:"department"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	CheckInTime string `json:"checkInTime"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

type EmployeeStatusRequest struct {
	Status      string `json:"status"`
	CheckInTime string `json:"checkInTime"`
}
