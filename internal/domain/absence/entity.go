package absence

import (
	"time"
)

// MonthlyQuota is the fixed justified-absence allowance per employee per
// calendar month, in hours.
const MonthlyQuota = 3.0

// AuthorizedAbsence is one logged justified departure/return window.
// Rows are immutable once created.
type AuthorizedAbsence struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Departure  string
	Return     string
	Reason     string
	Hours      float64
	CreatedAt  time.Time

	// Joined from personal for listings.
	EmployeeFirstName *string
	EmployeeLastName  *string
}
