package analytics

import (
	"sort"

	"github.com/fastygo/dashboard/domain"
)

func sortCells(cells []domain.HeatmapCell) {
	sort.SliceStable(cells, func(i, j int) bool {
		if cells[i].TotalRevenue != cells[j].TotalRevenue {
			return cells[i].TotalRevenue > cells[j].TotalRevenue
		}
		return cells[i].Bookings > cells[j].Bookings
	})
}

func sortCustomers(customers []domain.CustomerSummary) {
	sort.SliceStable(customers, func(i, j int) bool {
		if customers[i].TotalAmount != customers[j].TotalAmount {
			return customers[i].TotalAmount > customers[j].TotalAmount
		}
		return customers[i].Name < customers[j].Name
	})
}
