// Package report renders the dashboard's printable documents.
package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/currency"
)

const dateLayout = "02 Jan 2006, 03:04 PM"

// RevenueInput collects the figures printed on the revenue report.
type RevenueInput struct {
	Stats       domain.DerivedStats
	Monthly     []domain.RevenuePoint
	Busiest     []domain.HeatmapCell
	Attendance  domain.AttendanceSummary
	GeneratedAt time.Time
	Location    *time.Location
}

// RevenueReport writes a one-page A4 summary of revenue and attendance.
func RevenueReport(w io.Writer, in RevenueInput) error {
	loc := in.Location
	if loc == nil {
		loc = time.Local
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Revenue Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "Revenue Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Generated "+in.GeneratedAt.In(loc).Format(dateLayout))
	pdf.Ln(12)

	section(pdf, "Headline figures")
	header(pdf, []string{"Line", "Value", "Change"}, []float64{90, 50, 40})
	for _, stat := range []domain.StatValue{in.Stats.Tents, in.Stats.Catering, in.Stats.Combined} {
		row(pdf, []string{
			tr(string(stat.Line)),
			currency.FormatASCII(stat.Value),
			fmt.Sprintf("%+.1f%%", stat.Change),
		}, []float64{90, 50, 40}, stat.Highlight)
	}
	pdf.Ln(6)

	if len(in.Monthly) > 0 {
		section(pdf, "Monthly revenue")
		widths := []float64{40, 50, 50, 50}
		header(pdf, []string{"Month", "Tents", "Catering", "Total"}, widths)
		for _, p := range in.Monthly {
			row(pdf, []string{
				fmt.Sprintf("%s %d", p.Month, p.Year),
				currency.FormatASCII(p.Tents),
				currency.FormatASCII(p.Catering),
				currency.FormatASCII(p.Revenue),
			}, widths, false)
		}
		pdf.Ln(6)
	}

	if len(in.Busiest) > 0 {
		section(pdf, "Busiest time slots")
		widths := []float64{30, 30, 40, 50}
		header(pdf, []string{"Day", "Slot", "Bookings", "Revenue"}, widths)
		for _, cell := range in.Busiest {
			row(pdf, []string{
				cell.Day,
				cell.TimeSlot,
				fmt.Sprintf("%d", cell.Bookings),
				currency.FormatASCII(cell.TotalRevenue),
			}, widths, false)
		}
		pdf.Ln(6)
	}

	section(pdf, "Attendance today")
	widths := []float64{36, 36, 36, 36, 36}
	header(pdf, []string{"Total", "Present", "Late", "Absent", "On Leave"}, widths)
	row(pdf, []string{
		fmt.Sprintf("%d", in.Attendance.Total),
		fmt.Sprintf("%d", in.Attendance.Present),
		fmt.Sprintf("%d", in.Attendance.Late),
		fmt.Sprintf("%d", in.Attendance.Absent),
		fmt.Sprintf("%d", in.Attendance.OnLeave),
	}, widths, false)

	return pdf.Output(w)
}

// BookingSlip writes a confirmation slip with a QR code carrying the booking id.
func BookingSlip(w io.Writer, b domain.Booking, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}

	qrPNG, err := qrcode.Encode(b.ID, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("encode qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Booking "+b.ID, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(string(b.Type)))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, "Booking "+b.ID)
	pdf.Ln(12)

	lines := [][2]string{
		{"Event", b.Title},
		{"Event type", b.EventType},
		{"Customer", b.CustomerName},
		{"Company", b.CustomerCompany},
		{"Email", b.CustomerEmail},
		{"Phone", b.CustomerPhone},
		{"Venue", b.Venue},
		{"Date", b.Date.In(loc).Format(dateLayout)},
		{"Amount", currency.FormatASCII(b.Amount)},
		{"Status", string(b.Status)},
	}
	if b.GuestCount != nil {
		lines = append(lines, [2]string{"Guests", fmt.Sprintf("%d", *b.GuestCount)})
	}
	if b.Notes != "" {
		lines = append(lines, [2]string{"Notes", b.Notes})
	}

	for _, l := range lines {
		if l[1] == "" {
			continue
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(30, 7, l[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(70, 7, tr(l[1]), "", "L", false)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 108, 30, 30, 30, false, opts, 0, "")

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func header(pdf *gofpdf.Fpdf, cols []string, widths []float64) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func row(pdf *gofpdf.Fpdf, cols []string, widths []float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Arial", style, 10)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}
