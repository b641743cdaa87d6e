package netlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens/insight-backend-go/internal/domain/netlog"
	"github.com/seclens/insight-backend-go/internal/domain/profile"
)

type fakeProfileRepo struct {
	profiles []profile.EmployeeProfile
}

func (f *fakeProfileRepo) ListProfiles(_ context.Context) ([]profile.EmployeeProfile, error) {
	return f.profiles, nil
}

func (f *fakeProfileRepo) ListOrgUnits(_ context.Context) ([]profile.OrgUnit, error) {
	return nil, nil
}

type fakeNetlogRepo struct {
	logins     []netlog.LoginEvent
	traffic    []netlog.TrafficEvent
	loginErr   error
	trafficErr error
}

func (f *fakeNetlogRepo) ListLoginEvents(_ context.Context) ([]netlog.LoginEvent, error) {
	return f.logins, f.loginErr
}

func (f *fakeNetlogRepo) ListTrafficEvents(_ context.Context) ([]netlog.TrafficEvent, error) {
	return f.traffic, f.trafficErr
}

var testProfiles = []profile.EmployeeProfile{
	{EmployeeID: 10, Department: profile.DepartmentRnD, IPAddress: "10.0.1.1"},
	{EmployeeID: 20, Department: profile.DepartmentHR, IPAddress: "10.0.2.1"},
	{EmployeeID: 30, Department: profile.DepartmentFinance, IPAddress: "10.0.3.1"},
}

func TestTrafficBinBoundaries(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "小于1亿"},
		{99_999_999, "小于1亿"},
		{100_000_000, "1-10亿"},
		{1_500_000_000, "10-20亿"},
		{2_000_000_000, "20-30亿"},
		{3_500_000_000, "30-40亿"},
		{4_000_000_000, "40-50亿"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, trafficBin(tt.bytes), "bytes=%d", tt.bytes)
	}
}

func TestErrorBinBoundaries(t *testing.T) {
	assert.Equal(t, "小于5次", errorBin(0))
	assert.Equal(t, "小于5次", errorBin(4))
	assert.Equal(t, "5-20次", errorBin(5))
	assert.Equal(t, "5-20次", errorBin(20))
	assert.Equal(t, "大于20次", errorBin(21))
}

func TestCountBinBoundaries(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1条"}, {2, "2条"}, {3, "3条"}, {4, "4-10条"}, {9, "4-10条"},
		{10, "10-100条"}, {100, "10-100条"}, {101, "101-1000条"},
		{1000, "101-1000条"}, {1001, "大于1000条"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, countBin(tt.n), "n=%d", tt.n)
	}
}

func TestDateDay(t *testing.T) {
	assert.Equal(t, "2025-01-06", dateDay("2025-01-06 09:15:00"))
	assert.Equal(t, "未知日期", dateDay(""))
	assert.Equal(t, "short", dateDay("short"))
}

func TestBuildParallelDataAccumulatesPerEmployeeDay(t *testing.T) {
	logins := []netlog.LoginEvent{
		{SIP: "10.0.2.1", Time: "2025-01-06 09:00:00", State: "success", User: "hr20"},
		{SIP: "10.0.2.1", Time: "2025-01-06 09:05:00", State: "error", User: "hr20"},
		{SIP: "10.0.2.1", Time: "2025-01-06 09:06:00", State: "error", User: "root"},
	}
	traffic := []netlog.TrafficEvent{
		{SIP: "10.0.2.1", STime: "2025-01-06 10:00:00", UplinkLength: 1_500_000_000, DownlinkLength: 50_000_000},
		{SIP: "10.0.2.1", Time: "2025-01-06 11:00:00", UplinkLength: 100_000_000, DownlinkLength: 10_000_000},
	}

	resp := BuildParallelData(testProfiles, logins, traffic)

	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	// 部门, 登录行为, 错误登录, 上行, 下行, 数量
	assert.Equal(t, []string{"人力", "有", "小于5次", "10-20亿", "小于1亿", "1条"}, row.Value)
	assert.Equal(t, 1, row.MemberCount)
	assert.Equal(t, 5, row.OriginalCount)
	assert.Equal(t, 5, resp.TotalOriginalLogs)
	assert.Len(t, row.RawLogs, 5)

	require.Len(t, row.MemberDetails, 1)
	// Root errors are excluded from the error count.
	assert.Equal(t, netlog.MemberDetail{User: "20", Date: "2025-01-06", ErrorCount: 1}, row.MemberDetails[0])
	assert.Equal(t, "20", row.Tooltip.RepresentativeUser)
	assert.Equal(t, "2025-01-06", row.Tooltip.RepresentativeDate)
}

func TestBuildParallelDataDropsUnknownIPs(t *testing.T) {
	logins := []netlog.LoginEvent{
		{SIP: "192.168.99.99", Time: "2025-01-06 09:00:00", State: "error", User: "x"},
	}
	traffic := []netlog.TrafficEvent{
		{SIP: "192.168.99.99", STime: "2025-01-06 10:00:00", UplinkLength: 1, DownlinkLength: 1},
	}

	resp := BuildParallelData(testProfiles, logins, traffic)

	assert.Empty(t, resp.Rows)
	assert.Zero(t, resp.TotalOriginalLogs)
}

func TestBuildParallelDataDropsRnDWithoutLogin(t *testing.T) {
	// R&D traffic with no login record for the day is not represented; the
	// same pattern for HR is kept with login status 无.
	traffic := []netlog.TrafficEvent{
		{SIP: "10.0.1.1", STime: "2025-01-06 10:00:00", UplinkLength: 10, DownlinkLength: 10},
		{SIP: "10.0.2.1", STime: "2025-01-06 10:00:00", UplinkLength: 10, DownlinkLength: 10},
	}

	resp := BuildParallelData(testProfiles, nil, traffic)

	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "人力", resp.Rows[0].Value[0])
	assert.Equal(t, "无", resp.Rows[0].Value[1])
	// Dropped L1 records do not feed the total either.
	assert.Equal(t, 1, resp.TotalOriginalLogs)
}

func TestBuildParallelDataGroupsByCategory(t *testing.T) {
	// Two HR-owned days with identical bins collapse into one row with two
	// members; a Finance day forms its own row.
	logins := []netlog.LoginEvent{
		{SIP: "10.0.2.1", Time: "2025-01-06 09:00:00", State: "success", User: "a"},
		{SIP: "10.0.2.1", Time: "2025-01-07 09:00:00", State: "success", User: "a"},
		{SIP: "10.0.3.1", Time: "2025-01-06 09:00:00", State: "success", User: "b"},
	}

	resp := BuildParallelData(testProfiles, logins, nil)

	require.Len(t, resp.Rows, 2)
	assert.Equal(t, 2, resp.Rows[0].MemberCount)
	assert.Equal(t, "人力", resp.Rows[0].Value[0])
	assert.Equal(t, "2条", resp.Rows[0].Value[5])
	assert.Equal(t, 1, resp.Rows[1].MemberCount)
	assert.Equal(t, "财务", resp.Rows[1].Value[0])
	assert.Equal(t, 3, resp.TotalOriginalLogs)

	assert.Equal(t, resp.Rows[0].Value, resp.SeriesData[0])
	assert.Equal(t, resp.Rows[1].Value, resp.SeriesData[1])
}

func TestBuildParallelDataSchema(t *testing.T) {
	resp := BuildParallelData(testProfiles, nil, nil)

	require.Len(t, resp.Schema, 6)
	assert.Equal(t, "部门", resp.Schema[0].Name)
	assert.Equal(t, []string{"研发", "人力", "财务"}, resp.Schema[0].Data)
	assert.Equal(t, "数量", resp.Schema[5].Name)
	assert.Equal(t, 5, resp.Schema[5].Dim)
}

func TestGetParallelDataPropagatesRepositoryErrors(t *testing.T) {
	wantErr := errors.New("connection reset")
	svc := NewNetlogService(
		&fakeProfileRepo{profiles: testProfiles},
		&fakeNetlogRepo{loginErr: wantErr},
	)

	_, err := svc.GetParallelData(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestSubmitParallelDataAwait(t *testing.T) {
	svc := NewNetlogService(
		&fakeProfileRepo{profiles: testProfiles},
		&fakeNetlogRepo{
			logins: []netlog.LoginEvent{
				{SIP: "10.0.3.1", Time: "2025-01-06 09:00:00", State: "success", User: "b"},
			},
		},
	)

	task := svc.SubmitParallelData(context.Background())
	resp, err := task.Await(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "财务", resp.Rows[0].Value[0])
}
