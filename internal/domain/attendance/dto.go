package attendance

import (
	"github.com/seclens/insight-backend-go/internal/domain/profile"
)

// ========================================
// ANOMALY SUMMARY DTOs
// ========================================

// BarData is a leaderboard for one anomaly kind: employee IDs paired with
// their anomaly counts, descending.
type BarData struct {
	IDs    []string `json:"ids"`
	Counts []int    `json:"counts"`
}

// AnomalySummary is the per-department anomaly aggregate consumed by the
// ratio gauges and top-N bar charts.
type AnomalySummary struct {
	LateEarlyRatio float64 `json:"late_early_ratio"`
	AbsenceRatio   float64 `json:"absence_ratio"`
	LateEarlyBar   BarData `json:"late_early_bar"`
	AbsenceBar     BarData `json:"absence_bar"`
	TotalEmployees int     `json:"total_employees"`
}

// AnomalySummaryResponse maps each monitored department to its summary.
type AnomalySummaryResponse map[profile.Department]AnomalySummary

// ========================================
// TIME-OF-DAY DISTRIBUTION DTOs
// ========================================

// DistributionResponse carries 96 fifteen-minute bins of normalized check-in
// and check-out frequency for one department, with hour labels on every
// fourth bin.
type DistributionResponse struct {
	CheckinProportion  []float64 `json:"checkin_proportion"`
	CheckoutProportion []float64 `json:"checkout_proportion"`
	XLabels            []string  `json:"x_labels"`
}

// ========================================
// HEATMAP DTOs
// ========================================

// HeatmapCell is one (dayIndex, employeeIndex, workedHours) triple.
type HeatmapCell [3]float64

// DeptMarkLine is a department boundary on the employee axis.
type DeptMarkLine struct {
	YAxis float64 `json:"y_axis"`
}

// DeptMarkPoint anchors a department label, positioned as a CSS top
// percentage of the fixed chart container.
type DeptMarkPoint struct {
	Name          string  `json:"name"`
	YPercent      float64 `json:"y_percent"`
	EmployeeCount int     `json:"employee_count"`
}

// IndexRange is an inclusive employee-axis index span.
type IndexRange struct {
	StartIndex int `json:"start_index"`
	EndIndex   int `json:"end_index"`
}

// Detail exposes the raw check-in/check-out strings behind one heatmap cell.
type Detail struct {
	Checkin  *string `json:"checkin"`
	Checkout *string `json:"checkout"`
}

// DateRange is the span of the heatmap day axis.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// HeatmapResponse is the full worked-hours matrix plus the axis metadata the
// heatmap view needs: ordered axes, department boundaries and label anchors,
// filter ranges and the per-cell drill-down lookup.
type HeatmapResponse struct {
	SeriesData          []HeatmapCell         `json:"series_data"`
	XAxisData           []string              `json:"x_axis_data"`
	YAxisData           []string              `json:"y_axis_data"`
	MaxValue            int                   `json:"max_value"`
	DeptMarkLines       []DeptMarkLine        `json:"dept_mark_lines"`
	DeptMarkPoints      []DeptMarkPoint       `json:"dept_mark_points"`
	DepartmentRanges    map[string]IndexRange `json:"department_ranges"`
	EmployeeDeptNameMap map[string]string     `json:"employee_dept_name_map"`
	AttendanceDetailMap map[string]Detail     `json:"attendance_detail_map"`
	DateRange           DateRange             `json:"date_range"`
}
