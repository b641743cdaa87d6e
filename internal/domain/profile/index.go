package profile

import (
	"sort"
	"strconv"
)

// Work-hour rules. Finance and HR have fixed department-wide hours; R&D hours
// depend on the supervising minister, with a fallback for employees no org
// unit covers.
var generalWorkHours = map[Department]WorkHours{
	DepartmentFinance: {Start: "08:00:00", End: "17:00:00"},
	DepartmentHR:      {Start: "09:00:00", End: "18:00:00"},
}

var rdSubGroupHours = map[string]WorkHours{
	"1059": {Start: "10:00:00", End: "19:00:00"},
	"1007": {Start: "09:00:00", End: "18:00:00"},
	"1068": {Start: "09:00:00", End: "18:00:00"},
}

var rdDefaultHours = WorkHours{Start: "09:00:00", End: "18:00:00"}

// ReferenceIndex holds the lookup tables every aggregation pipeline consumes.
// It is built once from profile and org-structure data and never mutated
// afterwards, so it is safe to share across goroutines.
type ReferenceIndex struct {
	// DeptByEmployee maps employee ID to department for attendance streams.
	DeptByEmployee map[int]Department
	// HoursByEmployee maps employee ID to the resolved work-hour rule.
	// Employees outside Finance/HR/R&D have no entry.
	HoursByEmployee map[int]WorkHours
	// DeptByIP and EmployeeByIP map a source IP to its owner, for log streams.
	DeptByIP     map[string]Department
	EmployeeByIP map[string]string
	// TotalsByDept is the per-department headcount, counting every profiled
	// employee whether or not they appear in any event stream.
	TotalsByDept map[Department]int
	// EmployeeIDsByDept holds per-department employee IDs sorted ascending
	// (string order), used as the stable heatmap axis.
	EmployeeIDsByDept map[Department][]string
	// DeptNameByEmployee maps employee ID (string form) to the department
	// display label.
	DeptNameByEmployee map[string]string
}

// BuildReferenceIndex constructs the shared lookup index in three passes:
// profiles assign departments and Finance/HR hours, org units override R&D
// hours per sub-group, and a final pass gives every still-uncovered R&D
// employee the default rule. No R&D employee ends up without a rule.
func BuildReferenceIndex(profiles []EmployeeProfile, orgUnits []OrgUnit) *ReferenceIndex {
	idx := &ReferenceIndex{
		DeptByEmployee:     make(map[int]Department, len(profiles)),
		HoursByEmployee:    make(map[int]WorkHours, len(profiles)),
		DeptByIP:           make(map[string]Department, len(profiles)),
		EmployeeByIP:       make(map[string]string, len(profiles)),
		TotalsByDept:       make(map[Department]int),
		EmployeeIDsByDept:  make(map[Department][]string),
		DeptNameByEmployee: make(map[string]string, len(profiles)),
	}

	rdEmployees := make(map[int]struct{})

	for _, p := range profiles {
		idStr := strconv.Itoa(p.EmployeeID)
		idx.DeptByEmployee[p.EmployeeID] = p.Department
		idx.DeptByIP[p.IPAddress] = p.Department
		idx.EmployeeByIP[p.IPAddress] = idStr
		idx.DeptNameByEmployee[idStr] = p.Department.ShortName()

		switch {
		case p.Department == DepartmentRnD:
			rdEmployees[p.EmployeeID] = struct{}{}
		default:
			if hours, ok := generalWorkHours[p.Department]; ok {
				idx.HoursByEmployee[p.EmployeeID] = hours
			}
		}

		if p.Department.Known() {
			idx.TotalsByDept[p.Department]++
			idx.EmployeeIDsByDept[p.Department] = append(idx.EmployeeIDsByDept[p.Department], idStr)
		}
	}

	covered := make(map[int]struct{})
	for _, unit := range orgUnits {
		hours, ok := rdSubGroupHours[unit.MinisterID]
		if !ok {
			continue
		}
		for _, member := range unit.Members {
			memberID, err := strconv.Atoi(member)
			if err != nil {
				continue
			}
			idx.HoursByEmployee[memberID] = hours
			covered[memberID] = struct{}{}
		}
	}

	// R&D employees outside every known sub-group still get a rule.
	for employeeID := range rdEmployees {
		if _, ok := covered[employeeID]; !ok {
			idx.HoursByEmployee[employeeID] = rdDefaultHours
		}
	}

	for dept := range idx.EmployeeIDsByDept {
		sort.Strings(idx.EmployeeIDsByDept[dept])
	}

	return idx
}

// SortedEmployeeIDs returns the global heatmap axis: per-department sorted IDs
// concatenated in AxisLoadOrder.
func (idx *ReferenceIndex) SortedEmployeeIDs() []string {
	var ids []string
	for _, dept := range AxisLoadOrder {
		ids = append(ids, idx.EmployeeIDsByDept[dept]...)
	}
	return ids
}
