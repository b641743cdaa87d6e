package jsonfile

import (
	"context"

	"github.com/seclens/insight-backend-go/internal/domain/netlog"
)

type netlogRepository struct {
	dataset *Dataset
}

func NewNetlogRepository(dataset *Dataset) netlog.NetlogRepository {
	return &netlogRepository{dataset: dataset}
}

type loginRow struct {
	SIP   string `json:"sip"`
	Time  string `json:"time"`
	State string `json:"state"`
	User  string `json:"user"`
}

type trafficRow struct {
	SIP            string `json:"sip"`
	STime          string `json:"stime"`
	Time           string `json:"time"`
	UplinkLength   int64  `json:"uplink_length"`
	DownlinkLength int64  `json:"downlink_length"`
}

// ListLoginEvents implements netlog.NetlogRepository.
func (r *netlogRepository) ListLoginEvents(_ context.Context) ([]netlog.LoginEvent, error) {
	var rows []loginRow
	if err := r.dataset.decode(loginFile, &rows); err != nil {
		return nil, err
	}

	events := make([]netlog.LoginEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, netlog.LoginEvent{
			SIP:   row.SIP,
			Time:  row.Time,
			State: row.State,
			User:  row.User,
		})
	}

	return events, nil
}

// ListTrafficEvents implements netlog.NetlogRepository.
func (r *netlogRepository) ListTrafficEvents(_ context.Context) ([]netlog.TrafficEvent, error) {
	var rows []trafficRow
	if err := r.dataset.decode(trafficFile, &rows); err != nil {
		return nil, err
	}

	events := make([]netlog.TrafficEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, netlog.TrafficEvent{
			SIP:            row.SIP,
			STime:          row.STime,
			Time:           row.Time,
			UplinkLength:   row.UplinkLength,
			DownlinkLength: row.DownlinkLength,
		})
	}

	return events, nil
}
