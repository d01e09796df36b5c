package http

import (
	"log/slog"
	"net/http"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/stats"
	"github.com/bizdesk/bizdesk-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	AdminStats(w http.ResponseWriter, r *http.Request)
}

type StatsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &StatsHandlerImpl{statsService: statsService}
}

// AdminStats implements StatsHandler.
func (h *StatsHandlerImpl) AdminStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.statsService.AdminStats(r.Context())
	if err != nil {
		slog.Error("Admin stats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, out)
}
