package profile

// Department is the organizational unit an employee belongs to. The set is
// closed: records carrying anything else resolve to DepartmentUnknown and are
// filtered out of per-department aggregates.
type Department string

const (
	DepartmentFinance Department = "Finance"
	DepartmentHR      Department = "HR"
	DepartmentRnD     Department = "R&D"
	DepartmentUnknown Department = "Unknown"
)

// DisplayOrder is the visual top-to-bottom order chart views render
// departments in.
var DisplayOrder = []Department{DepartmentFinance, DepartmentHR, DepartmentRnD}

// AxisLoadOrder is the heatmap Y-axis load order, bottom to top. It must stay
// the exact reverse of DisplayOrder so Finance ends up on top when rendered.
var AxisLoadOrder = []Department{DepartmentRnD, DepartmentHR, DepartmentFinance}

var shortNames = map[Department]string{
	DepartmentFinance: "财务",
	DepartmentHR:      "人力",
	DepartmentRnD:     "研发",
	DepartmentUnknown: "未知",
}

// Known reports whether d is one of the three monitored departments.
func (d Department) Known() bool {
	switch d {
	case DepartmentFinance, DepartmentHR, DepartmentRnD:
		return true
	}
	return false
}

// ShortName returns the display label chart views use for d.
func (d Department) ShortName() string {
	if name, ok := shortNames[d]; ok {
		return name
	}
	return shortNames[DepartmentUnknown]
}

// EmployeeProfile is immutable reference data loaded once per aggregation run.
type EmployeeProfile struct {
	EmployeeID int
	Department Department
	IPAddress  string
}

// OrgUnit describes one R&D supervisory sub-group: the supervising minister
// and the employee IDs reporting to them.
type OrgUnit struct {
	MinisterID string
	Members    []string
}

// WorkHours is the expected check-in/check-out window for an employee,
// as wall-clock "HH:MM:SS" strings.
type WorkHours struct {
	Start string
	End   string
}
