package model

import "time"

// Appointment lifecycle statuses. Pending and confirmed appointments hold
// their time window; cancelled and completed ones release it.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// OwnerAssignee is the canonical staff value for appointments worked by the
// business owner. Requests may send "owner" or an empty assignee; both
// normalize to this before hitting storage.
const OwnerAssignee = "owner"

type Appointment struct {
	ID            string
	BusinessID    string
	ServiceID     string
	StaffID       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          string // YYYY-MM-DD
	StartMinute   int
	EndMinute     int
	Status        string
	CancelledAt   *time.Time
	CancelReason  string
	CreatedAt     time.Time
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// NormalizeAssignee maps the request-level assignee to the stored staff value.
func NormalizeAssignee(assignee string) string {
	if assignee == "" {
		return OwnerAssignee
	}
	return assignee
}
