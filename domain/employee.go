package domain

// EmployeeStatus is the attendance state of an employee for the current day.
type EmployeeStatus string

const (
	StatusPresent EmployeeStatus = "Present"
	StatusAbsent  EmployeeStatus = "Absent"
	StatusLate    EmployeeStatus = "Late"
	StatusOnLeave EmployeeStatus = "On Leave"
)

func (s EmployeeStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusOnLeave:
		return true
	}
	return false
}

// ChecksIn reports whether the status carries a check-in time.
func (s EmployeeStatus) ChecksIn() bool {
	return s == StatusPresent || s == StatusLate
}

// Department is either a business line or the non-operational management group.
type Department string

const (
	DepartmentTents      = Department(LineTents)
	DepartmentCatering   = Department(LineCatering)
	DepartmentManagement Department = "Management"
)

func (d Department) Valid() bool {
	return d == DepartmentTents || d == DepartmentCatering || d == DepartmentManagement
}

// Employee represents a staff member.
type Employee struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	AvatarURL   string         `json:"avatarUrl"`
	Department  Department     `json:"department"`
	Role        string         `json:"role"`
	Status      EmployeeStatus `json:"status"`
	CheckInTime string         `json:"checkInTime,omitempty"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
}

// Validate checks the fields an employee record cannot do without.
func (e *Employee) Validate() error {
	switch {
	case e == nil:
		return ErrInvalidPayload
	case e.Name == "":
		return invalid("employee name is required")
	case !e.Department.Valid():
		return invalid("unknown employee department")
	case !e.Status.Valid():
		return invalid("unknown employee status")
	}
	return nil
}

// NormalizeCheckIn drops the check-in time when the status does not carry one.
func (e *Employee) NormalizeCheckIn() {
	if e != nil && !e.Status.ChecksIn() {
		e.CheckInTime = ""
	}
}
