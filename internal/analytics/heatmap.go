package analytics

import (
	"time"

	"github.com/fastygo/dashboard/domain"
)

// EmptyHeatmap returns a zeroed grid with one row per slot and one column per day.
func EmptyHeatmap() [][]domain.HeatmapCell {
	grid := make([][]domain.HeatmapCell, len(Slots))
	for row, slot := range Slots {
		grid[row] = make([]domain.HeatmapCell, len(Days))
		for col, day := range Days {
			grid[row][col] = domain.HeatmapCell{
				Day:            day,
				TimeSlot:       slot,
				BookingDetails: []domain.BookingSummary{},
			}
		}
	}
	return grid
}

// BuildHeatmap buckets every booking by its local weekday and slot in a single pass.
// Bookings starting in the uncovered hours are left out of the grid.
func BuildHeatmap(bookings []domain.Booking, loc *time.Location) [][]domain.HeatmapCell {
	if loc == nil {
		loc = time.Local
	}
	grid := EmptyHeatmap()

	for _, b := range bookings {
		local := b.Date.In(loc)
		row, ok := SlotIndex(local.Hour())
		if !ok {
			continue
		}

		cell := &grid[row][int(local.Weekday())]
		cell.Bookings++
		cell.TotalRevenue += b.Amount
		switch b.Type {
		case domain.LineTents:
			cell.TentRevenue += b.Amount
		case domain.LineCatering:
			cell.CateringRevenue += b.Amount
		}
		cell.BookingDetails = append(cell.BookingDetails, b.Summary(loc))
	}
	return grid
}

// Unbucketed counts the bookings BuildHeatmap leaves out.
func Unbucketed(bookings []domain.Booking, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	var n int
	for _, b := range bookings {
		if _, ok := SlotIndex(b.Date.In(loc).Hour()); !ok {
			n++
		}
	}
	return n
}

// Highlight locates the cell for the given moment.
func Highlight(now time.Time, loc *time.Location) domain.Highlight {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	slot, _ := SlotFor(local.Hour())
	return domain.Highlight{
		Day:      Days[int(local.Weekday())],
		TimeSlot: slot,
	}
}

// BusiestCells returns up to limit non-empty cells ordered by revenue, then by booking count.
func BusiestCells(grid [][]domain.HeatmapCell, limit int) []domain.HeatmapCell {
	var cells []domain.HeatmapCell
	for _, row := range grid {
		for _, cell := range row {
			if cell.Bookings > 0 {
				cells = append(cells, cell)
			}
		}
	}
	sortCells(cells)
	if limit > 0 && len(cells) > limit {
		cells = cells[:limit]
	}
	return cells
}
