package jsonfile

import (
	"context"

	"github.com/seclens/insight-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	dataset *Dataset
}

func NewAttendanceRepository(dataset *Dataset) attendance.AttendanceRepository {
	return &attendanceRepository{dataset: dataset}
}

type attendanceRow struct {
	ID        int     `json:"id"`
	Day       string  `json:"day"`
	CheckIn   *string `json:"checkin"`
	CheckOut  *string `json:"checkout"`
	IsAbsence int     `json:"is_absence"`
}

// ListRecords implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListRecords(_ context.Context) ([]attendance.Record, error) {
	var rows []attendanceRow
	if err := r.dataset.decode(attendanceFile, &rows); err != nil {
		return nil, err
	}

	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, attendance.Record{
			EmployeeID: row.ID,
			Day:        row.Day,
			CheckIn:    row.CheckIn,
			CheckOut:   row.CheckOut,
			IsAbsence:  row.IsAbsence,
		})
	}

	return records, nil
}
