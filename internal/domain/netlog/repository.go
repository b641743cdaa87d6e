package netlog

import "context"

// NetlogRepository loads the raw network log collections.
type NetlogRepository interface {
	ListLoginEvents(ctx context.Context) ([]LoginEvent, error)
	ListTrafficEvents(ctx context.Context) ([]TrafficEvent, error)
}
