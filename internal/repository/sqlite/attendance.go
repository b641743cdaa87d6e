package sqlite

import (
	"context"
	"fmt"

	"github.com/seclens/insight-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

// ListRecords implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListRecords(ctx context.Context) ([]attendance.Record, error) {
	query := `
		SELECT employee_id, day, checkin, checkout, is_absence
		FROM attendance_records
		ORDER BY day, employee_id
	`

	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.EmployeeID, &rec.Day, &rec.CheckIn, &rec.CheckOut, &rec.IsAbsence); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}
