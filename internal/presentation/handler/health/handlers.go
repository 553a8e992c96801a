package health

import (
	"net/http"
	"time"

	"github.com/hilthontt/pipeline-demo/internal/domain"
	"github.com/hilthontt/pipeline-demo/internal/infrastructure/json"
)

type Handler struct {
	startTime time.Time
	now       domain.Clock
}

// NewHandler captures startTime once; uptime is measured against it.
func NewHandler(startTime time.Time, now domain.Clock) *Handler {
	return &Handler{
		startTime: startTime,
		now:       now,
	}
}

// GetHealth godoc
// @Summary      Health check
// @Description  Returns liveness, the current timestamp and process uptime in seconds
// @Tags         health
// @Produce      json
// @Success      200 {object} healthResponse "Service is healthy"
// @Router       /health [get]
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	snapshot := domain.NewHealthSnapshot(h.startTime, h.now())

	json.Write(w, http.StatusOK, healthResponse{
		Status:    snapshot.Status,
		Timestamp: domain.FormatTimestamp(snapshot.Timestamp),
		Uptime:    snapshot.Uptime.Seconds(),
	})
}
