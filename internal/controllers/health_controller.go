package controllers

import (
	"context"
	"net/http"

	"github.com/propside/backoffice/internal/dtos"
	"github.com/propside/backoffice/internal/utils"
)

// Pinger reports database reachability. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// GET /health
func (c *HealthController) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := dtos.HealthResponse{Status: "ok", DB: "ok"}
	status := http.StatusOK
	if err := c.db.Ping(r.Context()); err != nil {
		utils.Logger.WithError(err).Warn("health check: database unreachable")
		resp.Status = "degraded"
		resp.DB = "unreachable"
		status = http.StatusServiceUnavailable
	}
	utils.RespondWithJSON(w, status, resp)
}
