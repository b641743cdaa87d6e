package sqlite

import (
	"context"
	"fmt"

	"github.com/seclens/insight-backend-go/internal/domain/netlog"
)

type netlogRepository struct {
	store *Store
}

func NewNetlogRepository(store *Store) netlog.NetlogRepository {
	return &netlogRepository{store: store}
}

// ListLoginEvents implements netlog.NetlogRepository.
func (r *netlogRepository) ListLoginEvents(ctx context.Context) ([]netlog.LoginEvent, error) {
	query := `
		SELECT sip, time, state, user
		FROM login_events
		ORDER BY time, sip
	`

	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query login events: %w", err)
	}
	defer rows.Close()

	var events []netlog.LoginEvent
	for rows.Next() {
		var ev netlog.LoginEvent
		if err := rows.Scan(&ev.SIP, &ev.Time, &ev.State, &ev.User); err != nil {
			return nil, fmt.Errorf("failed to scan login event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read login events: %w", err)
	}

	return events, nil
}

// ListTrafficEvents implements netlog.NetlogRepository.
func (r *netlogRepository) ListTrafficEvents(ctx context.Context) ([]netlog.TrafficEvent, error) {
	query := `
		SELECT sip, COALESCE(stime, ''), COALESCE(time, ''), uplink_length, downlink_length
		FROM traffic_events
		ORDER BY COALESCE(stime, time), sip
	`

	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query traffic events: %w", err)
	}
	defer rows.Close()

	var events []netlog.TrafficEvent
	for rows.Next() {
		var ev netlog.TrafficEvent
		if err := rows.Scan(&ev.SIP, &ev.STime, &ev.Time, &ev.UplinkLength, &ev.DownlinkLength); err != nil {
			return nil, fmt.Errorf("failed to scan traffic event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read traffic events: %w", err)
	}

	return events, nil
}
