package netlog

import (
	"context"
	"fmt"

	"github.com/seclens/insight-backend-go/internal/domain/netlog"
	"github.com/seclens/insight-backend-go/internal/domain/profile"
	"github.com/seclens/insight-backend-go/internal/pkg/task"
	"golang.org/x/sync/errgroup"
)

// Categorical bin labels, ordered small to large as the parallel-coordinate
// axes display them.
var (
	errorBins   = []string{"大于20次", "5-20次", "小于5次"}
	trafficBins = []string{"小于1亿", "1-10亿", "10-20亿", "20-30亿", "30-40亿", "40-50亿"}
	countBins   = []string{"1条", "2条", "3条", "4-10条", "10-100条", "101-1000条", "大于1000条"}
	loginBins   = []string{"有", "无"}
)

type NetlogServiceImpl struct {
	profile.ProfileRepository
	netlog.NetlogRepository
}

func NewNetlogService(
	profileRepo profile.ProfileRepository,
	netlogRepo netlog.NetlogRepository,
) netlog.NetlogService {
	return &NetlogServiceImpl{
		ProfileRepository: profileRepo,
		NetlogRepository:  netlogRepo,
	}
}

// loadInputs fetches the three input collections concurrently.
func (s *NetlogServiceImpl) loadInputs(ctx context.Context) ([]profile.EmployeeProfile, []netlog.LoginEvent, []netlog.TrafficEvent, error) {
	var (
		profiles []profile.EmployeeProfile
		logins   []netlog.LoginEvent
		traffic  []netlog.TrafficEvent
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if profiles, err = s.ListProfiles(gCtx); err != nil {
			return fmt.Errorf("failed to list employee profiles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if logins, err = s.ListLoginEvents(gCtx); err != nil {
			return fmt.Errorf("failed to list login events: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if traffic, err = s.ListTrafficEvents(gCtx); err != nil {
			return fmt.Errorf("failed to list traffic events: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return profiles, logins, traffic, nil
}

// GetParallelData implements netlog.NetlogService.
func (s *NetlogServiceImpl) GetParallelData(ctx context.Context) (*netlog.ParallelResponse, error) {
	profiles, logins, traffic, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}
	return BuildParallelData(profiles, logins, traffic), nil
}

// SubmitParallelData implements netlog.NetlogService.
func (s *NetlogServiceImpl) SubmitParallelData(ctx context.Context) *task.Task[*netlog.ParallelResponse] {
	return task.Submit(ctx, s.GetParallelData)
}

// dateDay derives the "YYYY-MM-DD" day from an event timestamp.
func dateDay(ts string) string {
	if ts == "" {
		return "未知日期"
	}
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}

func errorBin(count int) string {
	switch {
	case count > 20:
		return "大于20次"
	case count >= 5:
		return "5-20次"
	}
	return "小于5次"
}

func trafficBin(bytes int64) string {
	switch {
	case bytes >= 4e9:
		return "40-50亿"
	case bytes >= 3e9:
		return "30-40亿"
	case bytes >= 2e9:
		return "20-30亿"
	case bytes >= 1e9:
		return "10-20亿"
	case bytes >= 1e8:
		return "1-10亿"
	}
	return "小于1亿"
}

func countBin(n int) string {
	switch {
	case n > 1000:
		return "大于1000条"
	case n >= 101:
		return "101-1000条"
	case n >= 10:
		return "10-100条"
	case n >= 4:
		return "4-10条"
	case n == 3:
		return "3条"
	case n == 2:
		return "2条"
	}
	return "1条"
}

type dayRecordIndex struct {
	records map[string]*netlog.DayRecord
	order   []string
}

// get returns the Level-1 record for one (source IP, day) pair, creating it
// on first sight. Insertion order is kept so output is deterministic.
func (l1 *dayRecordIndex) get(idx *profile.ReferenceIndex, sip, day string) *netlog.DayRecord {
	key := sip + "|" + day
	if rec, ok := l1.records[key]; ok {
		return rec
	}

	dept, ok := idx.DeptByIP[sip]
	if !ok {
		dept = profile.DepartmentUnknown
	}
	employeeID, ok := idx.EmployeeByIP[sip]
	if !ok {
		employeeID = "N/A"
	}

	rec := &netlog.DayRecord{
		Dept:       dept,
		EmployeeID: employeeID,
		DateDay:    day,
	}
	l1.records[key] = rec
	l1.order = append(l1.order, key)
	return rec
}

type categoryGroup struct {
	dimValues [5]string
	members   []*netlog.DayRecord
	original  int
}

// BuildParallelData is the full two-level fold: raw events into per-employee-
// day Level-1 records, then Level-1 records into one row per distinct
// 5-dimension category. It is a pure function of its inputs, so it can run
// inline or on a background task with identical results.
func BuildParallelData(profiles []profile.EmployeeProfile, logins []netlog.LoginEvent, traffic []netlog.TrafficEvent) *netlog.ParallelResponse {
	idx := profile.BuildReferenceIndex(profiles, nil)

	l1 := &dayRecordIndex{records: make(map[string]*netlog.DayRecord)}

	for i := range logins {
		ev := logins[i]
		// Unresolvable IPs are external or unmonitored traffic, not errors.
		if _, ok := idx.DeptByIP[ev.SIP]; !ok {
			continue
		}
		rec := l1.get(idx, ev.SIP, dateDay(ev.Time))
		rec.HasLoginRecord = true
		if ev.State == "error" && ev.User != "root" {
			rec.TotalErrors++
		}
		rec.OriginalCount++
		rec.RawLogs = append(rec.RawLogs, netlog.RawLog{Kind: "login", Login: &logins[i]})
	}

	for i := range traffic {
		ev := traffic[i]
		if _, ok := idx.DeptByIP[ev.SIP]; !ok {
			continue
		}
		ts := ev.STime
		if ts == "" {
			ts = ev.Time
		}
		rec := l1.get(idx, ev.SIP, dateDay(ts))
		rec.TotalUplink += ev.UplinkLength
		rec.TotalDownlink += ev.DownlinkLength
		rec.OriginalCount++
		rec.RawLogs = append(rec.RawLogs, netlog.RawLog{Kind: "traffic", Traffic: &traffic[i]})
	}

	groups := make(map[string]*categoryGroup)
	var groupOrder []string

	for _, key := range l1.order {
		rec := l1.records[key]
		if !rec.Dept.Known() {
			continue
		}

		loginStatus := "无"
		if rec.HasLoginRecord {
			loginStatus = "有"
		}

		// R&D access without authentication is not represented.
		if rec.Dept == profile.DepartmentRnD && !rec.HasLoginRecord {
			continue
		}

		dims := [5]string{
			rec.Dept.ShortName(),
			loginStatus,
			errorBin(rec.TotalErrors),
			trafficBin(rec.TotalUplink),
			trafficBin(rec.TotalDownlink),
		}
		groupKey := dims[0] + "|" + dims[1] + "|" + dims[2] + "|" + dims[3] + "|" + dims[4]

		group, ok := groups[groupKey]
		if !ok {
			group = &categoryGroup{dimValues: dims}
			groups[groupKey] = group
			groupOrder = append(groupOrder, groupKey)
		}
		group.members = append(group.members, rec)
		group.original += rec.OriginalCount
	}

	rows := make([]netlog.CategoryRow, 0, len(groupOrder))
	series := make([][]string, 0, len(groupOrder))
	totalOriginalLogs := 0

	for _, groupKey := range groupOrder {
		group := groups[groupKey]

		value := make([]string, 0, 6)
		value = append(value, group.dimValues[:]...)
		value = append(value, countBin(len(group.members)))

		details := make([]netlog.MemberDetail, 0, len(group.members))
		var rawLogs []netlog.RawLog
		for _, member := range group.members {
			details = append(details, netlog.MemberDetail{
				User:       member.EmployeeID,
				Date:       member.DateDay,
				ErrorCount: member.TotalErrors,
			})
			rawLogs = append(rawLogs, member.RawLogs...)
		}

		representative := group.members[0]
		rows = append(rows, netlog.CategoryRow{
			Value:         value,
			MemberCount:   len(group.members),
			OriginalCount: group.original,
			RawLogs:       rawLogs,
			MemberDetails: details,
			Tooltip: netlog.TooltipInfo{
				RepresentativeUser: representative.EmployeeID,
				RepresentativeDate: representative.DateDay,
				MemberCount:        len(group.members),
				AggregatedCount:    group.original,
			},
		})
		series = append(series, value)
		totalOriginalLogs += group.original
	}

	return &netlog.ParallelResponse{
		Schema: []netlog.SchemaDimension{
			{Dim: 0, Name: "部门", Data: []string{
				profile.DepartmentRnD.ShortName(),
				profile.DepartmentHR.ShortName(),
				profile.DepartmentFinance.ShortName(),
			}},
			{Dim: 1, Name: "登录行为", Data: loginBins},
			{Dim: 2, Name: "IP错误登录", Data: errorBins},
			{Dim: 3, Name: "上行流量", Data: trafficBins},
			{Dim: 4, Name: "下行流量", Data: trafficBins},
			{Dim: 5, Name: "数量", Data: countBins},
		},
		SeriesData:        series,
		Rows:              rows,
		TotalOriginalLogs: totalOriginalLogs,
	}
}
