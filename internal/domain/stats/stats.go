package stats

import "context"

// AdminStats are the dashboard aggregate counts.
type AdminStats struct {
	TotalProjects   int64 `json:"totalProjects"`
	ActiveEmployees int64 `json:"activeEmployees"`
	ActiveClients   int64 `json:"activeClients"`
	PendingRequests int64 `json:"pendingRequests"`
}

type StatsRepository interface {
	AdminStats(ctx context.Context) (AdminStats, error)
}

type StatsService interface {
	AdminStats(ctx context.Context) (AdminStats, error)
}
