package dashboard

import (
	"strings"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/repository"
)

func matchBooking(b domain.Booking, filter repository.BookingFilter) bool {
	if filter.Line != "" && filter.Line != domain.LineCombined && b.Type != filter.Line {
		return false
	}
	if filter.Status != "" && b.Status != filter.Status {
		return false
	}
	return containsFold(filter.Search, b.Title, b.CustomerName, b.Venue, b.EventType)
}

func matchEmployee(e domain.Employee, filter repository.EmployeeFilter) bool {
	if filter.Department != "" && e.Department != filter.Department {
		return false
	}
	if filter.Status != "" && e.Status != filter.Status {
		return false
	}
	return containsFold(filter.Search, e.Name, e.Role, string(e.Department), e.Email)
}

// containsFold matches an empty term against everything.
func containsFold(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// DefaultAvatar derives a placeholder avatar from the employee name.
func DefaultAvatar(name string) string {
	return "https://picsum.photos/seed/" + strings.ReplaceAll(name, " ", "") + "/80/80"
}

func mergeEmployee(current, update domain.Employee) domain.Employee {
	merged := current
	if update.Name != "" {
		merged.Name = update.Name
	}
	if update.AvatarURL != "" {
		merged.AvatarURL = update.AvatarURL
	}
	if update.Department != "" {
		merged.Department = update.Department
	}
	if update.Role != "" {
		merged.Role = update.Role
	}
	if update.Status != "" {
		merged.Status = update.Status
	}
	if update.CheckInTime != "" {
		merged.CheckInTime = update.CheckInTime
	}
	if update.Email != "" {
		merged.Email = update.Email
	}
	if update.Phone != "" {
		merged.Phone = update.Phone
	}
	return merged
}
