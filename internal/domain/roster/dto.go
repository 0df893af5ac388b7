package roster

import "context"

// Entry is one display-ready roster row: employee identity merged with
// today's attendance record and a resolved photo URL.
type Entry struct {
	EmployeeID     string  `json:"employee_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Department     *string `json:"department"`
	InternalNumber *string `json:"internal_number"`
	RecordID       *string `json:"record_id"`
	ClockIn        *string `json:"clock_in"`
	ClockOut       *string `json:"clock_out"`
	// PhotoURL is absent unless the stored key resolved to a public URL.
	PhotoURL *string `json:"photo_url,omitempty"`
}

// Group is an ordered department bucket. Employees without a department
// land in the Unassigned group.
type Group struct {
	Department string  `json:"department"`
	Entries    []Entry `json:"entries"`
}

// View is the product of one projection pass. Exactly one of Entries or
// Groups is populated depending on the grouping flag.
type View struct {
	Entries []Entry `json:"entries,omitempty"`
	Groups  []Group `json:"groups,omitempty"`
}

// RosterService recomputes the merged roster view from scratch per call.
type RosterService interface {
	BuildView(ctx context.Context, filterText string, groupByDepartment bool) (View, error)
}
