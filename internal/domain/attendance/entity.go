package attendance

// Record is one employee-day attendance event. CheckIn/CheckOut are raw
// "YYYY-MM-DD HH:MM:SS" wall-clock strings from the source collection; either
// may be missing. IsAbsence is authoritative: a record flagged absent is
// counted as absent regardless of its timestamps.
type Record struct {
	EmployeeID int
	Day        string // "YYYY-MM-DD"
	CheckIn    *string
	CheckOut   *string
	IsAbsence  int
}
