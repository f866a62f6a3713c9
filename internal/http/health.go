package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/locallibrary/catalog/internal/database"
)

const (
	healthOK       = "ok"
	healthDegraded = "degraded"
)

// HealthResponse is the JSON body of GET /health. Database carries "ok" or
// the ping failure, so monitoring can tell a dead store from a dead process.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// Status handles GET /health. A failing database ping degrades the report
// and answers 503 so load balancers stop routing here.
func (h *HealthController) Status(c *gin.Context) {
	response := HealthResponse{
		Status:   healthOK,
		Version:  h.version,
		Database: healthOK,
		Time:     time.Now().Format(time.RFC3339),
	}

	if err := h.pingDatabase(); err != nil {
		log.Error().Err(err).Msg("health check: database unreachable")
		response.Status = healthDegraded
		response.Database = err.Error()
	}

	code := http.StatusOK
	if response.Status != healthOK {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, response)
}

func (h *HealthController) pingDatabase() error {
	sqlDB, err := h.db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
