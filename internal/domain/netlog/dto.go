package netlog

// SchemaDimension describes one parallel-coordinate axis and its ordered
// category labels.
type SchemaDimension struct {
	Dim  int      `json:"dim"`
	Name string   `json:"name"`
	Data []string `json:"data"`
}

// MemberDetail is the drill-down summary of one Level-1 record inside a row.
type MemberDetail struct {
	User       string `json:"user"`
	Date       string `json:"date"`
	ErrorCount int    `json:"error_count"`
}

// TooltipInfo carries a representative member for hover display.
type TooltipInfo struct {
	RepresentativeUser string `json:"representative_user"`
	RepresentativeDate string `json:"representative_date"`
	MemberCount        int    `json:"member_count"`
	AggregatedCount    int    `json:"aggregated_count"`
}

// CategoryRow is one Level-2 output row: the six categorical values plus
// everything needed to trace the row back to its raw events.
type CategoryRow struct {
	Value         []string       `json:"value"` // dept, login status, error bin, uplink bin, downlink bin, count bin
	MemberCount   int            `json:"member_count"`
	OriginalCount int            `json:"original_count"`
	RawLogs       []RawLog       `json:"raw_logs"`
	MemberDetails []MemberDetail `json:"member_details"`
	Tooltip       TooltipInfo    `json:"tooltip"`
}

// ParallelResponse is the full payload for the parallel-coordinate view.
type ParallelResponse struct {
	Schema            []SchemaDimension `json:"schema"`
	SeriesData        [][]string        `json:"series_data"`
	Rows              []CategoryRow     `json:"rows"`
	TotalOriginalLogs int               `json:"total_original_logs"`
}
