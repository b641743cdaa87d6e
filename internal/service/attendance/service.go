package attendance

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/seclens/insight-backend-go/internal/domain/attendance"
	"github.com/seclens/insight-backend-go/internal/domain/profile"
)

const (
	// Grace period before a check-in/check-out deviation counts as an anomaly.
	gracePeriodSeconds = 8 * 60

	timeBins   = 24 * 4
	binSeconds = 15 * 60

	// Chart container geometry. Label anchor positions are derived
	// analytically from these, not from measured layout, so they must match
	// the fixed pixel margins the heatmap view renders with.
	chartFixedHeight = 800.0
	gridTopPx        = 50.0
	gridBottomPx     = 80.0

	// A worked duration outside (0, 14] hours is treated as bad clock data
	// and recorded as zero.
	maxShiftHours = 14.0

	timestampLayout = "2006-01-02 15:04:05"
)

type AttendanceServiceImpl struct {
	profile.ProfileRepository
	attendance.AttendanceRepository
}

func NewAttendanceService(
	profileRepo profile.ProfileRepository,
	attendanceRepo attendance.AttendanceRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		ProfileRepository:    profileRepo,
		AttendanceRepository: attendanceRepo,
	}
}

// loadInputs materializes the reference index and the attendance stream.
func (s *AttendanceServiceImpl) loadInputs(ctx context.Context) (*profile.ReferenceIndex, []attendance.Record, error) {
	profiles, err := s.ListProfiles(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list employee profiles: %w", err)
	}
	orgUnits, err := s.ListOrgUnits(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list org units: %w", err)
	}
	records, err := s.ListRecords(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return profile.BuildReferenceIndex(profiles, orgUnits), records, nil
}

// timeToSeconds converts an "HH:MM:SS" clock string to seconds since midnight.
func timeToSeconds(clock string) int {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	seconds := 0
	if len(parts) > 2 {
		seconds, _ = strconv.Atoi(parts[2])
	}
	return hours*3600 + minutes*60 + seconds
}

// clockPart extracts the "HH:MM:SS" portion of a "YYYY-MM-DD HH:MM:SS" stamp.
func clockPart(ts *string) (string, bool) {
	if ts == nil {
		return "", false
	}
	fields := strings.Fields(*ts)
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}

type anomalyFlags struct {
	Late    bool
	Early   bool
	Absence bool
}

// classifyRecord evaluates one record against the employee's work-hour rule.
// Absence is authoritative from the record flag. Late/early are only checked
// for non-absent records with a resolved rule; a missing check-in or
// check-out skips just that sub-check.
func classifyRecord(rec attendance.Record, hours *profile.WorkHours) anomalyFlags {
	flags := anomalyFlags{Absence: rec.IsAbsence == 1}
	if flags.Absence || hours == nil {
		return flags
	}

	if clock, ok := clockPart(rec.CheckIn); ok {
		if timeToSeconds(clock) > timeToSeconds(hours.Start)+gracePeriodSeconds {
			flags.Late = true
		}
	}
	if clock, ok := clockPart(rec.CheckOut); ok {
		if timeToSeconds(clock) < timeToSeconds(hours.End)-gracePeriodSeconds {
			flags.Early = true
		}
	}
	return flags
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

type employeeAnomalyStats struct {
	id             int
	lateEarlyCount int
	absenceCount   int
	isLateOrEarly  bool
	isAbsence      bool
}

// GetAnomalySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAnomalySummary(ctx context.Context) (attendance.AnomalySummaryResponse, error) {
	idx, records, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}

	statsByDept := make(map[profile.Department]map[int]*employeeAnomalyStats, len(profile.DisplayOrder))
	for _, dept := range profile.DisplayOrder {
		statsByDept[dept] = make(map[int]*employeeAnomalyStats)
	}

	for _, rec := range records {
		dept, ok := idx.DeptByEmployee[rec.EmployeeID]
		if !ok || !dept.Known() {
			continue
		}

		deptStats := statsByDept[dept]
		stats := deptStats[rec.EmployeeID]
		if stats == nil {
			stats = &employeeAnomalyStats{id: rec.EmployeeID}
			deptStats[rec.EmployeeID] = stats
		}

		var hours *profile.WorkHours
		if h, ok := idx.HoursByEmployee[rec.EmployeeID]; ok {
			hours = &h
		}

		flags := classifyRecord(rec, hours)
		if flags.Late {
			stats.lateEarlyCount++
		}
		if flags.Early {
			stats.lateEarlyCount++
		}
		if flags.Late || flags.Early {
			stats.isLateOrEarly = true
		}
		if flags.Absence {
			stats.absenceCount++
			stats.isAbsence = true
		}
	}

	result := make(attendance.AnomalySummaryResponse, len(profile.DisplayOrder))
	for _, dept := range profile.DisplayOrder {
		all := make([]*employeeAnomalyStats, 0, len(statsByDept[dept]))
		for _, stats := range statsByDept[dept] {
			all = append(all, stats)
		}

		total := idx.TotalsByDept[dept]

		var lateEarlyEmployees, absenceEmployees int
		for _, stats := range all {
			if stats.isLateOrEarly {
				lateEarlyEmployees++
			}
			if stats.isAbsence {
				absenceEmployees++
			}
		}

		// Denominator is the department headcount from the profile data, not
		// the number of employees seen in the attendance stream.
		var lateEarlyRatio, absenceRatio float64
		if total > 0 {
			lateEarlyRatio = float64(lateEarlyEmployees) / float64(total)
			absenceRatio = float64(absenceEmployees) / float64(total)
		}

		result[dept] = attendance.AnomalySummary{
			LateEarlyRatio: round3(lateEarlyRatio),
			AbsenceRatio:   round3(absenceRatio),
			LateEarlyBar:   topAnomalies(all, func(s *employeeAnomalyStats) int { return s.lateEarlyCount }),
			AbsenceBar:     topAnomalies(all, func(s *employeeAnomalyStats) int { return s.absenceCount }),
			TotalEmployees: total,
		}
	}

	return result, nil
}

// topAnomalies keeps employees with a nonzero count, sorts them descending by
// count (ties broken by employee ID ascending for a deterministic order) and
// truncates to the top 20 for the bar chart.
func topAnomalies(all []*employeeAnomalyStats, count func(*employeeAnomalyStats) int) attendance.BarData {
	filtered := make([]*employeeAnomalyStats, 0, len(all))
	for _, stats := range all {
		if count(stats) > 0 {
			filtered = append(filtered, stats)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		ci, cj := count(filtered[i]), count(filtered[j])
		if ci != cj {
			return ci > cj
		}
		return filtered[i].id < filtered[j].id
	})

	if len(filtered) > 20 {
		filtered = filtered[:20]
	}

	bar := attendance.BarData{
		IDs:    make([]string, 0, len(filtered)),
		Counts: make([]int, 0, len(filtered)),
	}
	for _, stats := range filtered {
		bar.IDs = append(bar.IDs, strconv.Itoa(stats.id))
		bar.Counts = append(bar.Counts, count(stats))
	}
	return bar
}

// GetTimeDistribution implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTimeDistribution(ctx context.Context, dept profile.Department) (attendance.DistributionResponse, error) {
	if !dept.Known() {
		return attendance.DistributionResponse{}, attendance.ErrUnknownDepartment
	}

	idx, records, err := s.loadInputs(ctx)
	if err != nil {
		return attendance.DistributionResponse{}, err
	}

	checkinFreq := make([]int, timeBins)
	checkoutFreq := make([]int, timeBins)
	var totalCheckin, totalCheckout int

	for _, rec := range records {
		if idx.DeptByEmployee[rec.EmployeeID] != dept {
			continue
		}
		if clock, ok := clockPart(rec.CheckIn); ok {
			if bin := timeToSeconds(clock) / binSeconds; bin >= 0 && bin < timeBins {
				checkinFreq[bin]++
				totalCheckin++
			}
		}
		if clock, ok := clockPart(rec.CheckOut); ok {
			if bin := timeToSeconds(clock) / binSeconds; bin >= 0 && bin < timeBins {
				checkoutFreq[bin]++
				totalCheckout++
			}
		}
	}

	resp := attendance.DistributionResponse{
		CheckinProportion:  make([]float64, timeBins),
		CheckoutProportion: make([]float64, timeBins),
		XLabels:            make([]string, timeBins),
	}

	// A department with no events keeps all-zero bins instead of NaN.
	for i := 0; i < timeBins; i++ {
		if totalCheckin > 0 {
			resp.CheckinProportion[i] = round4(float64(checkinFreq[i]) / float64(totalCheckin))
		}
		if totalCheckout > 0 {
			resp.CheckoutProportion[i] = round4(float64(checkoutFreq[i]) / float64(totalCheckout))
		}
		if i%4 == 0 {
			resp.XLabels[i] = fmt.Sprintf("%02d:00", i/4)
		}
	}

	return resp, nil
}

// GetHeatmap implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHeatmap(ctx context.Context) (*attendance.HeatmapResponse, error) {
	idx, records, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}

	sortedEmployeeIDs := idx.SortedEmployeeIDs()
	onAxis := make(map[string]struct{}, len(sortedEmployeeIDs))
	for _, id := range sortedEmployeeIDs {
		onAxis[id] = struct{}{}
	}

	daySet := make(map[string]struct{})
	dailyHours := make(map[string]map[string]float64)
	detailMap := make(map[string]attendance.Detail)

	for _, rec := range records {
		id := strconv.Itoa(rec.EmployeeID)
		if _, ok := onAxis[id]; !ok {
			continue
		}
		daySet[rec.Day] = struct{}{}

		var worked float64
		if rec.CheckIn != nil && rec.CheckOut != nil {
			in, inErr := time.Parse(timestampLayout, *rec.CheckIn)
			out, outErr := time.Parse(timestampLayout, *rec.CheckOut)
			if inErr == nil && outErr == nil {
				if d := out.Sub(in).Hours(); d > 0 && d <= maxShiftHours {
					worked = d
				}
			}
		}

		if dailyHours[id] == nil {
			dailyHours[id] = make(map[string]float64)
		}
		dailyHours[id][rec.Day] = worked

		detailMap[id+"_"+rec.Day] = attendance.Detail{
			Checkin:  rec.CheckIn,
			Checkout: rec.CheckOut,
		}
	}

	sortedDays := make([]string, 0, len(daySet))
	for day := range daySet {
		sortedDays = append(sortedDays, day)
	}
	sort.Strings(sortedDays)

	var maxWorkHours float64
	series := make([]attendance.HeatmapCell, 0, len(sortedDays)*len(sortedEmployeeIDs))
	for dayIdx, day := range sortedDays {
		for empIdx, id := range sortedEmployeeIDs {
			worked := dailyHours[id][day]
			series = append(series, attendance.HeatmapCell{float64(dayIdx), float64(empIdx), round2(worked)})
			if worked > maxWorkHours {
				maxWorkHours = worked
			}
		}
	}

	totalEmployees := len(sortedEmployeeIDs)
	ranges := map[string]attendance.IndexRange{
		"全部": {StartIndex: 0, EndIndex: totalEmployees - 1},
	}

	drawingHeightRatio := (chartFixedHeight - gridTopPx - gridBottomPx) / chartFixedHeight
	gridTopRatio := gridTopPx / chartFixedHeight

	var markPoints []attendance.DeptMarkPoint
	cumulative := 0
	for _, dept := range profile.AxisLoadOrder {
		count := len(idx.EmployeeIDsByDept[dept])
		if count == 0 {
			continue
		}
		name := dept.ShortName()
		ranges[name] = attendance.IndexRange{
			StartIndex: cumulative,
			EndIndex:   cumulative + count - 1,
		}

		// Anchor the label at the department's employee-index midpoint,
		// converted to a CSS top percentage of the full container.
		midpoint := float64(cumulative) + float64(count)/2
		yNormalized := midpoint / float64(totalEmployees)
		yPercent := gridTopRatio*100 + (1-yNormalized)*drawingHeightRatio*100

		markPoints = append(markPoints, attendance.DeptMarkPoint{
			Name:          name,
			YPercent:      yPercent,
			EmployeeCount: count,
		})
		cumulative += count
	}

	// Boundary lines follow the axis load order: R&D/HR first, then HR/Finance.
	var markLines []attendance.DeptMarkLine
	lineIndex := len(idx.EmployeeIDsByDept[profile.DepartmentRnD])
	if lineIndex > 0 && len(idx.EmployeeIDsByDept[profile.DepartmentHR]) > 0 {
		markLines = append(markLines, attendance.DeptMarkLine{YAxis: float64(lineIndex) - 0.5})
	}
	lineIndex += len(idx.EmployeeIDsByDept[profile.DepartmentHR])
	if lineIndex > 0 && len(idx.EmployeeIDsByDept[profile.DepartmentFinance]) > 0 {
		markLines = append(markLines, attendance.DeptMarkLine{YAxis: float64(lineIndex) - 0.5})
	}

	var dateRange attendance.DateRange
	if len(sortedDays) > 0 {
		dateRange = attendance.DateRange{
			From: sortedDays[0],
			To:   sortedDays[len(sortedDays)-1],
		}
	}

	return &attendance.HeatmapResponse{
		SeriesData:          series,
		XAxisData:           sortedDays,
		YAxisData:           sortedEmployeeIDs,
		MaxValue:            int(math.Ceil(maxWorkHours)),
		DeptMarkLines:       markLines,
		DeptMarkPoints:      markPoints,
		DepartmentRanges:    ranges,
		EmployeeDeptNameMap: idx.DeptNameByEmployee,
		AttendanceDetailMap: detailMap,
		DateRange:           dateRange,
	}, nil
}
