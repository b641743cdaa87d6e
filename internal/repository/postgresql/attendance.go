package postgresql

import (
	"context"
	"fmt"

	"github.com/seclens/insight-backend-go/internal/domain/attendance"
	"github.com/seclens/insight-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ListRecords implements attendance.AttendanceRepository.
// Check-in/check-out are kept as the raw text the collector wrote; downstream
// detail lookups expose them verbatim.
func (r *attendanceRepository) ListRecords(ctx context.Context) ([]attendance.Record, error) {
	query := `
		SELECT employee_id, day, checkin, checkout, is_absence
		FROM attendance_records
		ORDER BY day, employee_id
	`

	rows, err := r.db.Query(ctx, query)
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
