package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReferenceIndexResolvesGeneralHours(t *testing.T) {
	profiles := []EmployeeProfile{
		{EmployeeID: 1001, Department: DepartmentFinance, IPAddress: "10.0.0.1"},
		{EmployeeID: 1002, Department: DepartmentHR, IPAddress: "10.0.0.2"},
	}

	idx := BuildReferenceIndex(profiles, nil)

	require.Contains(t, idx.HoursByEmployee, 1001)
	assert.Equal(t, WorkHours{Start: "08:00:00", End: "17:00:00"}, idx.HoursByEmployee[1001])
	require.Contains(t, idx.HoursByEmployee, 1002)
	assert.Equal(t, WorkHours{Start: "09:00:00", End: "18:00:00"}, idx.HoursByEmployee[1002])
}

func TestBuildReferenceIndexResolvesRnDSubGroupHours(t *testing.T) {
	profiles := []EmployeeProfile{
		{EmployeeID: 2001, Department: DepartmentRnD, IPAddress: "10.0.1.1"},
		{EmployeeID: 2002, Department: DepartmentRnD, IPAddress: "10.0.1.2"},
	}
	orgUnits := []OrgUnit{
		{MinisterID: "1059", Members: []string{"2001"}},
		{MinisterID: "1007", Members: []string{"2002"}},
	}

	idx := BuildReferenceIndex(profiles, orgUnits)

	assert.Equal(t, WorkHours{Start: "10:00:00", End: "19:00:00"}, idx.HoursByEmployee[2001])
	assert.Equal(t, WorkHours{Start: "09:00:00", End: "18:00:00"}, idx.HoursByEmployee[2002])
}

func TestBuildReferenceIndexFallbackForUncoveredRnD(t *testing.T) {
	profiles := []EmployeeProfile{
		{EmployeeID: 2003, Department: DepartmentRnD, IPAddress: "10.0.1.3"},
	}
	orgUnits := []OrgUnit{
		// Unknown minister is skipped entirely; its members get the fallback.
		{MinisterID: "9999", Members: []string{"2003"}},
	}

	idx := BuildReferenceIndex(profiles, orgUnits)

	assert.Equal(t, WorkHours{Start: "09:00:00", End: "18:00:00"}, idx.HoursByEmployee[2003])
}

func TestBuildReferenceIndexSkipsMalformedMemberIDs(t *testing.T) {
	profiles := []EmployeeProfile{
		{EmployeeID: 2004, Department: DepartmentRnD, IPAddress: "10.0.1.4"},
	}
	orgUnits := []OrgUnit{
		{MinisterID: "1059", Members: []string{"not-a-number", "2004"}},
	}

	idx := BuildReferenceIndex(profiles, orgUnits)

	assert.Equal(t, WorkHours{Start: "10:00:00", End: "19:00:00"}, idx.HoursByEmployee[2004])
}

func TestBuildReferenceIndexFiltersUnknownDepartments(t *testing.T) {
	profiles := []EmployeeProfile{
		{EmployeeID: 1, Department: DepartmentFinance, IPAddress: "10.0.0.1"},
		{EmployeeID: 2, Department: "Sales", IPAddress: "10.0.0.2"},
	}

	idx := BuildReferenceIndex(profiles, nil)

	assert.Equal(t, 1, idx.TotalsByDept[DepartmentFinance])
	assert.Len(t, idx.TotalsByDept, 1)
	assert.NotContains(t, idx.EmployeeIDsByDept, Department("Sales"))

	// Lookup maps still cover the unknown profile so log streams can resolve it.
	assert.Equal(t, Department("Sales"), idx.DeptByIP["10.0.0.2"])
	assert.Equal(t, "2", idx.EmployeeByIP["10.0.0.2"])
}

func TestSortedEmployeeIDsFollowsAxisLoadOrder(t *testing.T) {
	profiles := []EmployeeProfile{
		{EmployeeID: 30, Department: DepartmentFinance, IPAddress: "10.0.0.30"},
		{EmployeeID: 20, Department: DepartmentHR, IPAddress: "10.0.0.20"},
		{EmployeeID: 12, Department: DepartmentRnD, IPAddress: "10.0.0.12"},
		{EmployeeID: 10, Department: DepartmentRnD, IPAddress: "10.0.0.10"},
	}

	idx := BuildReferenceIndex(profiles, nil)

	// R&D first, then HR, then Finance; string-sorted within a department.
	assert.Equal(t, []string{"10", "12", "20", "30"}, idx.SortedEmployeeIDs())
}
