package stats

import (
	"context"
	"fmt"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/stats"
)

type StatsServiceImpl struct {
	stats.StatsRepository
}

func NewStatsService(statsRepository stats.StatsRepository) stats.StatsService {
	return &StatsServiceImpl{StatsRepository: statsRepository}
}

// AdminStats implements stats.StatsService.
func (s *StatsServiceImpl) AdminStats(ctx context.Context) (stats.AdminStats, error) {
	out, err := s.StatsRepository.AdminStats(ctx)
	if err != nil {
		return stats.AdminStats{}, fmt.Errorf("failed to load admin stats: %w", err)
	}
	return out, nil
}
