package attendance

import "context"

// AttendanceRepository loads the daily check-in/check-out stream.
type AttendanceRepository interface {
	ListRecords(ctx context.Context) ([]Record, error)
}
