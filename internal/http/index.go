package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/locallibrary/catalog/internal/catalog"
	"github.com/locallibrary/catalog/internal/session"
)

type IndexController struct {
	workflow *catalog.IndexWorkflow
	sessions *session.Manager
}

func NewIndexController(workflow *catalog.IndexWorkflow, sessions *session.Manager) *IndexController {
	return &IndexController{workflow: workflow, sessions: sessions}
}

// Home handles GET /catalog
func (ic *IndexController) Home(c *gin.Context) {
	outcome, err := ic.workflow.Home()
	applyOutcome(c, ic.sessions, outcome, err)
}

// Root handles GET / by redirecting to the catalog home.
func (ic *IndexController) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/catalog")
}
