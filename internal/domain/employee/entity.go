package employee

import (
	"time"
)

// DepartmentUnassigned is the bucket for employees without a department
// in grouped views.
const DepartmentUnassigned = "Unassigned"

type Employee struct {
	ID             string
	FirstName      string
	LastName       string
	Department     *string
	InternalNumber *string
	// ScheduledEntry is the default entry time for new rosters, "HH:MM".
	ScheduledEntry string
	ScheduledExit  *string
	// JustifiedHours is the cumulative justified-absence figure kept on the
	// roster row itself, editable by the operator. Expected range 0-3.
	JustifiedHours float64
	PhotoKey       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName renders "Lastname, Firstname" the way roster listings show it.
func (e Employee) FullName() string {
	return e.LastName + ", " + e.FirstName
}
