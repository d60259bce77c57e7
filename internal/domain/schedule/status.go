package schedule

import "github.com/courtspace/court-scheduler/internal/models"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func InitialStatus() Status {
	return StatusConfirmed
}

// Cancel moves a reservation to its terminal state. Cancelling an
// already cancelled reservation re-persists the status with a fresh
// update timestamp; this is deliberate.
func Cancel(res *models.Reservation) {
	res.Status = string(StatusCancelled)
}

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusConfirmed, StatusCancelled:
		return Status(s), true
	}
	return "", false
}
