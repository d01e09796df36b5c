package postgresql

import (
	"context"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/stats"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

// AdminStats implements stats.StatsRepository.
func (r *statsRepositoryImpl) AdminStats(ctx context.Context) (stats.AdminStats, error) {
	q := GetQuerier(ctx, r.db)

	var s stats.AdminStats
	err := q.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM users WHERE role = 'EMPLOYEE' AND is_active = TRUE),
			(SELECT COUNT(*) FROM users WHERE role = 'CLIENT' AND is_active = TRUE),
			(SELECT COUNT(*) FROM service_requests WHERE status = 'PENDING')`,
	).Scan(&s.TotalProjects, &s.ActiveEmployees, &s.ActiveClients, &s.PendingRequests)
	return s, err
}
