package domain

import "strings"

// BusinessLine identifies one of the operator's service lines.
type BusinessLine string

const (
	LineTents    BusinessLine = "Ghunghat Tents"
	LineCatering BusinessLine = "Krishna Caterers"
	// LineCombined aggregates both lines. It is never stored on a booking.
	LineCombined BusinessLine = "Combined Services"
)

// Bookable reports whether a booking may carry the line.
func (l BusinessLine) Bookable() bool {
	return l == LineTents || l == LineCatering
}

// ParseBusinessLine accepts the stored values as well as the short names used in query strings.
func ParseBusinessLine(value string) (BusinessLine, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "tents", "tent", strings.ToLower(string(LineTents)):
		return LineTents, true
	case "catering", "caterers", strings.ToLower(string(LineCatering)):
		return LineCatering, true
	case "combined", "all", strings.ToLower(string(LineCombined)):
		return LineCombined, true
	}
	return "", false
}
