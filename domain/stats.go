package domain

import "time"

// StatValue is one headline figure of the dashboard.
type StatValue struct {
	Title     string       `json:"title"`
	Line      BusinessLine `json:"type"`
	Value     int64        `json:"value"`
	Change    float64      `json:"change"`
	Highlight bool         `json:"highlight,omitempty"`
}

// DerivedStats holds the per-line and combined revenue figures.
type DerivedStats struct {
	Tents    StatValue `json:"tents"`
	Catering StatValue `json:"catering"`
	Combined StatValue `json:"combined"`
}

// HeatmapCell aggregates the bookings that fall on one day within one time slot.
type HeatmapCell struct {
	Day             string           `json:"day"`
	TimeSlot        string           `json:"timeSlot"`
	Bookings        int              `json:"bookings"`
	TotalRevenue    int64            `json:"totalRevenue"`
	TentRevenue     int64            `json:"tentRevenue"`
	CateringRevenue int64            `json:"cateringRevenue"`
	BookingDetails  []BookingSummary `json:"bookingDetails"`
}

// Highlight marks the heatmap cell covering the current moment. TimeSlot is empty inside the uncovered hours.
type Highlight struct {
	Day      string `json:"day"`
	TimeSlot string `json:"hour,omitempty"`
}

// RevenuePoint is one month of the revenue series.
type RevenuePoint struct {
	Month    string `json:"month"`
	Year     int    `json:"year"`
	Tents    int64  `json:"tents"`
	Catering int64  `json:"catering"`
	Revenue  int64  `json:"revenue"`
}

// CustomerSummary aggregates all bookings placed under one customer name.
type CustomerSummary struct {
	Name        string         `json:"name"`
	Email       string         `json:"email,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Company     string         `json:"company,omitempty"`
	Bookings    int            `json:"bookings"`
	TotalAmount int64          `json:"totalAmount"`
	Lines       []BusinessLine `json:"lines"`
	LastBooking time.Time      `json:"lastBooking"`
}

// AttendanceSummary counts employees per attendance status and department.
type AttendanceSummary struct {
	Total        int                `json:"total"`
	Present      int                `json:"present"`
	Late         int                `json:"late"`
	Absent       int                `json:"absent"`
	OnLeave      int                `json:"onLeave"`
	ByDepartment map[Department]int `json:"byDepartment"`
}

// Snapshot is the read model handed to the rendering layer after each mutation.
type Snapshot struct {
	Bookings    []Booking       `json:"bookings"`
	Employees   []Employee      `json:"employees"`
	Stats       DerivedStats    `json:"stats"`
	Heatmap     [][]HeatmapCell `json:"heatmap"`
	Highlight   Highlight       `json:"highlight"`
	GeneratedAt time.Time       `json:"generatedAt"`
}
