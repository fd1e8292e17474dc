package models

import "time"

// DateFormat is the wire format for assignment and survey dates.
const DateFormat = "2006-01-02"

// CommitteeAssignment is one faculty member's seat on a committee for a date
// range. (Email, CommitteeID) is the composite key: a member holds at most one
// seat per committee.
type CommitteeAssignment struct {
	Email       string    `json:"email"`
	CommitteeID int64     `json:"committeeId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// DatesValid reports whether the assignment's date range is well formed.
func (a CommitteeAssignment) DatesValid() bool {
	return !a.StartDate.After(a.EndDate)
}
