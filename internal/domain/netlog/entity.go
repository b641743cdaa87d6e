package netlog

import (
	"github.com/seclens/insight-backend-go/internal/domain/profile"
)

// LoginEvent is one authentication attempt seen from a source IP.
type LoginEvent struct {
	SIP   string `json:"sip"`
	Time  string `json:"time"` // "YYYY-MM-DD HH:MM:SS"
	State string `json:"state"`
	User  string `json:"user"`
}

// TrafficEvent is one TCP traffic record. STime is preferred over Time when
// deriving the day; some source feeds carry one, some the other.
type TrafficEvent struct {
	SIP            string `json:"sip"`
	STime          string `json:"stime,omitempty"`
	Time           string `json:"time,omitempty"`
	UplinkLength   int64  `json:"uplink_length"`
	DownlinkLength int64  `json:"downlink_length"`
}

// RawLog wraps one raw underlying event of either kind, preserved for
// drill-down from aggregated rows.
type RawLog struct {
	Kind    string        `json:"kind"` // "login" | "traffic"
	Login   *LoginEvent   `json:"login,omitempty"`
	Traffic *TrafficEvent `json:"traffic,omitempty"`
}

// DayRecord is the Level-1 fold: every login and traffic event sharing one
// (source IP, day) pair, accumulated into a per-employee-day summary.
// RawLogs keeps the contributing events in arrival order.
type DayRecord struct {
	Dept           profile.Department `json:"dept"`
	EmployeeID     string             `json:"employee_id"`
	DateDay        string             `json:"date_day"`
	TotalErrors    int                `json:"total_errors"`
	HasLoginRecord bool               `json:"has_login_record"`
	TotalUplink    int64              `json:"total_uplink"`
	TotalDownlink  int64              `json:"total_downlink"`
	OriginalCount  int                `json:"original_count"`
	RawLogs        []RawLog           `json:"raw_logs"`
}
